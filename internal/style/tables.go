package style

// Fixed lookup tables mapping design values to Tailwind utility names.

// spacingScale maps pixel values to the Tailwind spacing scale (w-, h-, p-).
var spacingScale = map[float64]string{
	0: "0", 2: "0.5", 4: "1", 6: "1.5", 8: "2", 10: "2.5", 12: "3", 14: "3.5",
	16: "4", 20: "5", 24: "6", 28: "7", 32: "8", 36: "9", 40: "10", 44: "11",
	48: "12", 56: "14", 64: "16", 80: "20", 96: "24", 112: "28", 128: "32",
	144: "36", 160: "40", 176: "44", 192: "48", 208: "52", 224: "56",
	240: "60", 256: "64", 288: "72", 320: "80", 384: "96",
}

// gapBuckets maps an upper spacing bound to its gap token. Values above the
// last bound use an explicit pixel token.
var gapBuckets = []struct {
	max   float64
	token string
}{
	{4, "gap-1"},
	{8, "gap-2"},
	{12, "gap-3"},
	{16, "gap-4"},
	{20, "gap-5"},
	{24, "gap-6"},
}

var alignTokens = map[string]string{
	"MIN":     "start",
	"CENTER":  "center",
	"MAX":     "end",
	"STRETCH": "stretch",
}

var justifyTokens = map[string]string{
	"MIN":           "justify-start",
	"CENTER":        "justify-center",
	"MAX":           "justify-end",
	"SPACE_BETWEEN": "justify-between",
}

// palette maps upper-case hex colors to Tailwind color names.
var palette = map[string]string{
	"#FFFFFF": "white",
	"#000000": "black",
	"#F9FAFB": "gray-50",
	"#F3F4F6": "gray-100",
	"#E5E7EB": "gray-200",
	"#D1D5DB": "gray-300",
	"#9CA3AF": "gray-400",
	"#6B7280": "gray-500",
	"#4B5563": "gray-600",
	"#374151": "gray-700",
	"#1F2937": "gray-800",
	"#111827": "gray-900",
	"#EF4444": "red-500",
	"#DC2626": "red-600",
	"#F59E0B": "amber-500",
	"#EAB308": "yellow-500",
	"#22C55E": "green-500",
	"#16A34A": "green-600",
	"#10B981": "emerald-500",
	"#3B82F6": "blue-500",
	"#2563EB": "blue-600",
	"#1D4ED8": "blue-700",
	"#6366F1": "indigo-500",
	"#4F46E5": "indigo-600",
	"#8B5CF6": "violet-500",
	"#EC4899": "pink-500",
}

var radiusTokens = map[float64]string{
	2:  "rounded-sm",
	4:  "rounded",
	6:  "rounded-md",
	8:  "rounded-lg",
	12: "rounded-xl",
	16: "rounded-2xl",
	24: "rounded-3xl",
}

// fullRadius is the radius at or above which a node is treated as a pill.
const fullRadius = 9999

var borderWidthTokens = map[float64]string{
	1: "border",
	2: "border-2",
	4: "border-4",
	8: "border-8",
}

var fontSizeTokens = map[float64]string{
	12: "text-xs",
	14: "text-sm",
	16: "text-base",
	18: "text-lg",
	20: "text-xl",
	24: "text-2xl",
	30: "text-3xl",
	36: "text-4xl",
	48: "text-5xl",
	60: "text-6xl",
	72: "text-7xl",
}

var fontWeightTokens = map[int]string{
	100: "font-thin",
	200: "font-extralight",
	300: "font-light",
	400: "font-normal",
	500: "font-medium",
	600: "font-semibold",
	700: "font-bold",
	800: "font-extrabold",
	900: "font-black",
}

var textAlignTokens = map[string]string{
	"LEFT":   "text-left",
	"CENTER": "text-center",
	"RIGHT":  "text-right",
}

// shadowTokens keys are "offsetX/offsetY/radius".
var shadowTokens = map[string]string{
	"0/1/2":   "shadow-sm",
	"0/1/3":   "shadow",
	"0/4/6":   "shadow-md",
	"0/10/15": "shadow-lg",
	"0/20/25": "shadow-xl",
	"0/25/50": "shadow-2xl",
}
