package tokens

// NeutralScale is a ten-shade neutral ramp ordered lightest to darkest,
// following Tailwind's 50..900 numbering.
type NeutralScale struct {
	N50, N100, N200, N300, N400, N500, N600, N700, N800, N900 Color
}

// NeutralLight is the neutral ramp used by the light variant.
var NeutralLight = NeutralScale{
	N50:  RGB("#f8fafc"),
	N100: RGB("#f1f5f9"),
	N200: RGB("#e2e8f0"),
	N300: RGB("#cbd5e1"),
	N400: RGB("#94a3b8"),
	N500: RGB("#64748b"),
	N600: RGB("#475569"),
	N700: RGB("#334155"),
	N800: RGB("#1e293b"),
	N900: RGB("#0f172a"),
}

// NeutralDark is the neutral ramp used by the dark variant. It is not a
// reversed light ramp: the dark surfaces sit closer together so elevation
// reads through shadow and border rather than value jumps.
var NeutralDark = NeutralScale{
	N50:  RGB("#0b1120"),
	N100: RGB("#111827"),
	N200: RGB("#1f2937"),
	N300: RGB("#2b3544"),
	N400: RGB("#475569"),
	N500: RGB("#64748b"),
	N600: RGB("#94a3b8"),
	N700: RGB("#cbd5e1"),
	N800: RGB("#e2e8f0"),
	N900: RGB("#f8fafc"),
}

// AccentPair holds the saturated light-mode entry of an accent family and
// its desaturated dark-safe counterpart. Dark themes must use DarkSafe:
// the saturated entries vibrate against dark surfaces.
type AccentPair struct {
	Light    Color
	DarkSafe Color
}

// Accent families. Entries come from the Tailwind 500/400 shades.
var (
	AccentBlue   = AccentPair{Light: RGB("#3b82f6"), DarkSafe: RGB("#60a5fa")}
	AccentPurple = AccentPair{Light: RGB("#a855f7"), DarkSafe: RGB("#c084fc")}
	AccentGreen  = AccentPair{Light: RGB("#22c55e"), DarkSafe: RGB("#4ade80")}
	AccentAmber  = AccentPair{Light: RGB("#d97706"), DarkSafe: RGB("#fbbf24")}
	AccentRed    = AccentPair{Light: RGB("#ef4444"), DarkSafe: RGB("#f87171")}
	AccentCyan   = AccentPair{Light: RGB("#06b6d4"), DarkSafe: RGB("#22d3ee")}
)

// High-contrast accent entries, substituted when the increased-contrast
// policy is active. One step deeper in light mode, one step lighter in dark.
var (
	AccentBlueContrast   = AccentPair{Light: RGB("#1d4ed8"), DarkSafe: RGB("#93c5fd")}
	AccentPurpleContrast = AccentPair{Light: RGB("#7c3aed"), DarkSafe: RGB("#d8b4fe")}
	AccentGreenContrast  = AccentPair{Light: RGB("#15803d"), DarkSafe: RGB("#86efac")}
	AccentAmberContrast  = AccentPair{Light: RGB("#92400e"), DarkSafe: RGB("#fcd34d")}
	AccentRedContrast    = AccentPair{Light: RGB("#b91c1c"), DarkSafe: RGB("#fca5a5")}
	AccentCyanContrast   = AccentPair{Light: RGB("#0e7490"), DarkSafe: RGB("#67e8f9")}
)
