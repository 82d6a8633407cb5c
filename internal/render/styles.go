package render

// RunStyle captures the inline run formatting of a paragraph. Size is in
// half points.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   int
	Color  string
}

// MESH brand colors.
const (
	ColorBurgundy = "50141E"
	ColorOrange   = "F0643C"
	ColorDarkRed  = "781E28"
	ColorGold     = "FFB400"
	ColorBlack    = "000000"
	ColorGray     = "646464"
)

const (
	CoverTitleSize = 56
	ChapterSize    = 36
	SectionSize    = 28
	BodySize       = 20
)

// StyleMap centralizes the formatting of every paragraph kind in a playbook.
var StyleMap = map[string]RunStyle{
	"coverTitle":   {Bold: true, Size: CoverTitleSize, Color: ColorBurgundy},
	"coverCompany": {Bold: true, Size: 40, Color: ColorOrange},
	"chapter":      {Bold: true, Size: ChapterSize, Color: ColorBurgundy},
	"section":      {Bold: true, Size: SectionSize, Color: ColorBurgundy},
	"subsection":   {Bold: true, Size: 24, Color: ColorDarkRed},
	"toolName":     {Bold: true, Size: 26, Color: ColorOrange},
	"label":        {Bold: true, Size: BodySize, Color: ColorDarkRed},
	"value":        {Bold: true, Size: 22, Color: ColorOrange},
	"body":         {Size: BodySize, Color: ColorBlack},
	"meta":         {Size: BodySize, Color: ColorGray},
	"quote":        {Italic: true, Size: BodySize, Color: ColorDarkRed},
	"note":         {Italic: true, Size: 18, Color: ColorGray},
	"link":         {Italic: true, Size: 18, Color: ColorOrange},
	"bar":          {Size: BodySize, Color: ColorGold},
}
