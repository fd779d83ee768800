//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 不能引用上级目录，mobile/data/snowfall.yaml 是 data/snowfall.yaml
// 的副本，修改默认配置时需同步：
//
//	cp data/snowfall.yaml mobile/data/
package mobile

import "embed"

//go:embed data/snowfall.yaml
var dataFS embed.FS
