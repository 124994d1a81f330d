package platform

// Platform identifies a concrete host environment. HandheldPointer is a
// handheld with a paired pointer (trackpad or mouse); it keeps handheld
// layout preferences but gains hover and focus-ring support.
type Platform int

const (
	Handheld Platform = iota
	HandheldPointer
	Desktop
	Wrist
)

func (p Platform) String() string {
	switch p {
	case Handheld:
		return "handheld"
	case HandheldPointer:
		return "handheld-pointer"
	case Desktop:
		return "desktop"
	case Wrist:
		return "wrist"
	default:
		return "handheld"
	}
}

// DeviceClass groups platforms by physical form factor.
type DeviceClass int

const (
	ClassHandheld DeviceClass = iota
	ClassDesktop
	ClassWrist
)

// Class returns the platform's device class.
func (p Platform) Class() DeviceClass {
	switch p {
	case Desktop:
		return ClassDesktop
	case Wrist:
		return ClassWrist
	default:
		return ClassHandheld
	}
}

func (c DeviceClass) String() string {
	switch c {
	case ClassDesktop:
		return "desktop"
	case ClassWrist:
		return "wrist"
	default:
		return "handheld"
	}
}

// Platforms lists every supported platform, in declaration order.
func Platforms() []Platform {
	return []Platform{Handheld, HandheldPointer, Desktop, Wrist}
}
