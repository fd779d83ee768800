//go:build !mobile

// Package platform 提供移动端检测、存储目录准备和触摸手势识别
package platform

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 SNOWFALL_MOBILE_EMULATE=1 强制启用移动模式（鼠标点击视为单指轻触）
func IsMobile() bool {
	return os.Getenv("SNOWFALL_MOBILE_EMULATE") == "1"
}
