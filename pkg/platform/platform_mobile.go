//go:build mobile

// Package platform 提供移动端检测、存储目录准备和触摸手势识别
package platform

// IsMobile 移动端编译时返回 true
func IsMobile() bool {
	return true
}
