package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Gesture 宿主控制手势（只控制查看器，不与雪花交互）
type Gesture int

const (
	// GestureNone 本帧没有手势
	GestureNone Gesture = iota
	// GestureTap 单指轻触：切换动画模式
	GestureTap
	// GestureTwoFingerTap 双指轻触：暂停/继续
	GestureTwoFingerTap
)

func (g Gesture) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureTwoFingerTap:
		return "two-finger-tap"
	default:
		return "none"
	}
}

// Classify 根据本帧新按下的触点数、当前活动触点数和鼠标点击识别手势
//
// 鼠标点击只在 mobile 为 true（或模拟移动端）时视为轻触，
// 桌面端使用键盘快捷键。
func Classify(justPressed, active int, mouseClicked, mobile bool) Gesture {
	if justPressed > 0 {
		if active >= 2 {
			return GestureTwoFingerTap
		}
		return GestureTap
	}
	if mobile && mouseClicked {
		return GestureTap
	}
	return GestureNone
}

// ReadGesture 读取本帧的 ebiten 输入并识别手势
// 每个 tick 调用一次
func ReadGesture() Gesture {
	justPressed := len(inpututil.AppendJustPressedTouchIDs(nil))
	active := len(ebiten.AppendTouchIDs(nil))
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return Classify(justPressed, active, clicked, IsMobile())
}
