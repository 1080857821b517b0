package texture

// FourCC builds a four-character code from its bytes (little-endian), e.g.
// FourCC('D', 'X', 'T', '5').
func FourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// blockInfos is indexed by Format. The block-size/bpp relation
// blockSize*8 == bpp*blockWidth*blockHeight holds exactly everywhere except
// the non-4x4 ASTC rates, whose true bits-per-pixel are fractional; those
// rows store the ceiling.
var blockInfos = [formatCount]BlockInfo{
	FormatBC1:      {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 1, MinBlockY: 1},
	FormatBC2:      {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatBC3:      {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatBC4:      {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 1, MinBlockY: 1},
	FormatBC5:      {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatBC6H:     {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1, Encoding: EncodingFloat},
	FormatBC7:      {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatETC1:     {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 1, MinBlockY: 1},
	FormatETC2:     {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 1, MinBlockY: 1},
	FormatETC2A:    {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatETC2A1:   {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 1, MinBlockY: 1},
	FormatPTC12:    {BPP: 2, BlockWidth: 8, BlockHeight: 4, BlockSize: 8, MinBlockX: 2, MinBlockY: 2},
	FormatPTC14:    {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 2, MinBlockY: 2},
	FormatPTC12A:   {BPP: 2, BlockWidth: 8, BlockHeight: 4, BlockSize: 8, MinBlockX: 2, MinBlockY: 2},
	FormatPTC14A:   {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 2, MinBlockY: 2},
	FormatPTC22:    {BPP: 2, BlockWidth: 8, BlockHeight: 4, BlockSize: 8, MinBlockX: 2, MinBlockY: 2},
	FormatPTC24:    {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 2, MinBlockY: 2},
	FormatATC:      {BPP: 4, BlockWidth: 4, BlockHeight: 4, BlockSize: 8, MinBlockX: 1, MinBlockY: 1},
	FormatATCE:     {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatATCI:     {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatASTC4x4:  {BPP: 8, BlockWidth: 4, BlockHeight: 4, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatASTC5x5:  {BPP: 6, BlockWidth: 5, BlockHeight: 5, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatASTC6x6:  {BPP: 4, BlockWidth: 6, BlockHeight: 6, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatASTC8x5:  {BPP: 4, BlockWidth: 8, BlockHeight: 5, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatASTC8x6:  {BPP: 3, BlockWidth: 8, BlockHeight: 6, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},
	FormatASTC10x5: {BPP: 3, BlockWidth: 10, BlockHeight: 5, BlockSize: 16, MinBlockX: 1, MinBlockY: 1},

	FormatA8:       {BPP: 8, BlockWidth: 1, BlockHeight: 1, BlockSize: 1, MinBlockX: 1, MinBlockY: 1, ABits: 8},
	FormatR8:       {BPP: 8, BlockWidth: 1, BlockHeight: 1, BlockSize: 1, MinBlockX: 1, MinBlockY: 1, RBits: 8},
	FormatRGBA8:    {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 8, GBits: 8, BBits: 8, ABits: 8},
	FormatRGBA8S:   {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 8, GBits: 8, BBits: 8, ABits: 8, Encoding: EncodingSnorm},
	FormatRG16:     {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 16, GBits: 16},
	FormatRGB8:     {BPP: 24, BlockWidth: 1, BlockHeight: 1, BlockSize: 3, MinBlockX: 1, MinBlockY: 1, RBits: 8, GBits: 8, BBits: 8},
	FormatR16:      {BPP: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlockX: 1, MinBlockY: 1, RBits: 16},
	FormatR32F:     {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 32, Encoding: EncodingFloat},
	FormatR16F:     {BPP: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlockX: 1, MinBlockY: 1, RBits: 16, Encoding: EncodingFloat},
	FormatRG16F:    {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 16, GBits: 16, Encoding: EncodingFloat},
	FormatRG16S:    {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 16, GBits: 16, Encoding: EncodingSnorm},
	FormatRGBA16F:  {BPP: 64, BlockWidth: 1, BlockHeight: 1, BlockSize: 8, MinBlockX: 1, MinBlockY: 1, RBits: 16, GBits: 16, BBits: 16, ABits: 16, Encoding: EncodingFloat},
	FormatRGBA16:   {BPP: 64, BlockWidth: 1, BlockHeight: 1, BlockSize: 8, MinBlockX: 1, MinBlockY: 1, RBits: 16, GBits: 16, BBits: 16, ABits: 16},
	FormatBGRA8:    {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 8, GBits: 8, BBits: 8, ABits: 8},
	FormatRGB10A2:  {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 10, GBits: 10, BBits: 10, ABits: 2},
	FormatRG11B10F: {BPP: 32, BlockWidth: 1, BlockHeight: 1, BlockSize: 4, MinBlockX: 1, MinBlockY: 1, RBits: 11, GBits: 11, BBits: 10, Encoding: EncodingFloat},
	FormatRG8:      {BPP: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlockX: 1, MinBlockY: 1, RBits: 8, GBits: 8},
	FormatRG8S:     {BPP: 16, BlockWidth: 1, BlockHeight: 1, BlockSize: 2, MinBlockX: 1, MinBlockY: 1, RBits: 8, GBits: 8, Encoding: EncodingSnorm},
}

// formatNames holds the display name and the has-alpha default per format.
// KTX files carry no alpha flag, so the descriptor uses the default.
var formatNames = [formatCount]struct {
	name  string
	alpha bool
}{
	FormatBC1:      {"BC1", false},
	FormatBC2:      {"BC2", true},
	FormatBC3:      {"BC3", true},
	FormatBC4:      {"BC4", false},
	FormatBC5:      {"BC5", false},
	FormatBC6H:     {"BC6H", false},
	FormatBC7:      {"BC7", true},
	FormatETC1:     {"ETC1", false},
	FormatETC2:     {"ETC2", false},
	FormatETC2A:    {"ETC2A", true},
	FormatETC2A1:   {"ETC2A1", true},
	FormatPTC12:    {"PTC12", false},
	FormatPTC14:    {"PTC14", false},
	FormatPTC12A:   {"PTC12A", true},
	FormatPTC14A:   {"PTC14A", true},
	FormatPTC22:    {"PTC22", false},
	FormatPTC24:    {"PTC24", false},
	FormatATC:      {"ATC", false},
	FormatATCE:     {"ATCE", true},
	FormatATCI:     {"ATCI", true},
	FormatASTC4x4:  {"ASTC4x4", true},
	FormatASTC5x5:  {"ASTC5x5", true},
	FormatASTC6x6:  {"ASTC6x6", true},
	FormatASTC8x5:  {"ASTC8x5", true},
	FormatASTC8x6:  {"ASTC8x6", true},
	FormatASTC10x5: {"ASTC10x5", true},

	FormatA8:       {"A8", true},
	FormatR8:       {"R8", false},
	FormatRGBA8:    {"RGBA8", true},
	FormatRGBA8S:   {"RGBA8S", true},
	FormatRG16:     {"RG16", false},
	FormatRGB8:     {"RGB8", false},
	FormatR16:      {"R16", false},
	FormatR32F:     {"R32F", false},
	FormatR16F:     {"R16F", false},
	FormatRG16F:    {"RG16F", false},
	FormatRG16S:    {"RG16S", false},
	FormatRGBA16F:  {"RGBA16F", true},
	FormatRGBA16:   {"RGBA16", true},
	FormatBGRA8:    {"BGRA8", true},
	FormatRGB10A2:  {"RGB10A2", true},
	FormatRG11B10F: {"RG11B10F", false},
	FormatRG8:      {"RG8", false},
	FormatRG8S:     {"RG8S", false},
}

// ddsFourCCEntry translates a DDS pixel-format FourCC. Legacy D3DFMT codes
// appear here as plain numbers because DDS stores them in the FourCC field.
type ddsFourCCEntry struct {
	fourCC uint32
	format Format
	srgb   bool
}

// Scanned linearly, first match wins. The FourCC path never produces sRGB;
// only the DXGI table can.
var ddsFourCCs = []ddsFourCCEntry{
	{FourCC('D', 'X', 'T', '1'), FormatBC1, false},
	{FourCC('D', 'X', 'T', '2'), FormatBC2, false},
	{FourCC('D', 'X', 'T', '3'), FormatBC2, false},
	{FourCC('D', 'X', 'T', '4'), FormatBC3, false},
	{FourCC('D', 'X', 'T', '5'), FormatBC3, false},
	{FourCC('A', 'T', 'I', '1'), FormatBC4, false},
	{FourCC('B', 'C', '4', 'U'), FormatBC4, false},
	{FourCC('A', 'T', 'I', '2'), FormatBC5, false},
	{FourCC('B', 'C', '5', 'U'), FormatBC5, false},
	{FourCC('E', 'T', 'C', '1'), FormatETC1, false},
	{FourCC('E', 'T', 'C', '2'), FormatETC2, false},
	{FourCC('E', 'T', '2', 'A'), FormatETC2A, false},
	{FourCC('P', 'T', 'C', '2'), FormatPTC12, false},
	{FourCC('P', 'T', 'C', '4'), FormatPTC14, false},
	{FourCC('A', 'T', 'C', ' '), FormatATC, false},
	{FourCC('A', 'T', 'C', 'E'), FormatATCE, false},
	{FourCC('A', 'T', 'C', 'I'), FormatATCI, false},
	{21, FormatBGRA8, false},    // D3DFMT_A8R8G8B8
	{31, FormatRGB10A2, false},  // D3DFMT_A2B10G10R10
	{34, FormatRG16, false},     // D3DFMT_G16R16
	{36, FormatRGBA16, false},   // D3DFMT_A16B16G16R16
	{60, FormatRG8S, false},     // D3DFMT_V8U8
	{63, FormatRGBA8S, false},   // D3DFMT_Q8W8V8U8
	{64, FormatRG16S, false},    // D3DFMT_V16U16
	{111, FormatR16F, false},    // D3DFMT_R16F
	{112, FormatRG16F, false},   // D3DFMT_G16R16F
	{113, FormatRGBA16F, false}, // D3DFMT_A16B16G16R16F
	{114, FormatR32F, false},    // D3DFMT_R32F
}

// ddsDXGIEntry translates a DXGI format ID from the DX10 extension header.
type ddsDXGIEntry struct {
	dxgiFormat uint32
	format     Format
	srgb       bool
}

var ddsDXGIFormats = []ddsDXGIEntry{
	{10, FormatRGBA16F, false},  // DXGI_FORMAT_R16G16B16A16_FLOAT
	{11, FormatRGBA16, false},   // DXGI_FORMAT_R16G16B16A16_UNORM
	{24, FormatRGB10A2, false},  // DXGI_FORMAT_R10G10B10A2_UNORM
	{26, FormatRG11B10F, false}, // DXGI_FORMAT_R11G11B10_FLOAT
	{28, FormatRGBA8, false},    // DXGI_FORMAT_R8G8B8A8_UNORM
	{29, FormatRGBA8, true},     // DXGI_FORMAT_R8G8B8A8_UNORM_SRGB
	{31, FormatRGBA8S, false},   // DXGI_FORMAT_R8G8B8A8_SNORM
	{34, FormatRG16F, false},    // DXGI_FORMAT_R16G16_FLOAT
	{35, FormatRG16, false},     // DXGI_FORMAT_R16G16_UNORM
	{37, FormatRG16S, false},    // DXGI_FORMAT_R16G16_SNORM
	{41, FormatR32F, false},     // DXGI_FORMAT_R32_FLOAT
	{49, FormatRG8, false},      // DXGI_FORMAT_R8G8_UNORM
	{51, FormatRG8S, false},     // DXGI_FORMAT_R8G8_SNORM
	{54, FormatR16F, false},     // DXGI_FORMAT_R16_FLOAT
	{56, FormatR16, false},      // DXGI_FORMAT_R16_UNORM
	{61, FormatR8, false},       // DXGI_FORMAT_R8_UNORM
	{65, FormatA8, false},       // DXGI_FORMAT_A8_UNORM
	{71, FormatBC1, false},      // DXGI_FORMAT_BC1_UNORM
	{72, FormatBC1, true},       // DXGI_FORMAT_BC1_UNORM_SRGB
	{74, FormatBC2, false},      // DXGI_FORMAT_BC2_UNORM
	{75, FormatBC2, true},       // DXGI_FORMAT_BC2_UNORM_SRGB
	{77, FormatBC3, false},      // DXGI_FORMAT_BC3_UNORM
	{78, FormatBC3, true},       // DXGI_FORMAT_BC3_UNORM_SRGB
	{80, FormatBC4, false},      // DXGI_FORMAT_BC4_UNORM
	{81, FormatBC4, false},      // DXGI_FORMAT_BC4_SNORM
	{83, FormatBC5, false},      // DXGI_FORMAT_BC5_UNORM
	{84, FormatBC5, false},      // DXGI_FORMAT_BC5_SNORM
	{87, FormatBGRA8, false},    // DXGI_FORMAT_B8G8R8A8_UNORM
	{91, FormatBGRA8, true},     // DXGI_FORMAT_B8G8R8A8_UNORM_SRGB
	{95, FormatBC6H, false},     // DXGI_FORMAT_BC6H_UF16
	{96, FormatBC6H, false},     // DXGI_FORMAT_BC6H_SF16
	{98, FormatBC7, false},      // DXGI_FORMAT_BC7_UNORM
	{99, FormatBC7, true},       // DXGI_FORMAT_BC7_UNORM_SRGB
}

// ddsPixelEntry matches an uncompressed legacy pixel format by simultaneous
// equality on bit count, flags, and all four channel masks.
type ddsPixelEntry struct {
	bitCount uint32
	flags    uint32
	masks    [4]uint32 // r, g, b, a
	format   Format
}

var ddsPixelFormats = []ddsPixelEntry{
	{32, ddpfRGB | ddpfAlphaPixels, [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000}, FormatRGBA8},
	{32, ddpfRGB | ddpfAlphaPixels, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000}, FormatBGRA8},
	{32, ddpfRGB, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0x00000000}, FormatBGRA8},
	{32, ddpfRGB, [4]uint32{0x0000ffff, 0xffff0000, 0x00000000, 0x00000000}, FormatRG16},
	{32, ddpfRGB | ddpfAlphaPixels, [4]uint32{0x000003ff, 0x000ffc00, 0x3ff00000, 0xc0000000}, FormatRGB10A2},
	{24, ddpfRGB, [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0x00000000}, FormatRGB8},
	{24, ddpfRGB, [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0x00000000}, FormatRGB8},
	{16, ddpfLuminance, [4]uint32{0x0000ffff, 0x00000000, 0x00000000, 0x00000000}, FormatR16},
	{16, ddpfLuminance | ddpfAlphaPixels, [4]uint32{0x000000ff, 0x00000000, 0x00000000, 0x0000ff00}, FormatRG8},
	{16, ddpfBumpDUDV, [4]uint32{0x000000ff, 0x0000ff00, 0x00000000, 0x00000000}, FormatRG8S},
	{8, ddpfLuminance, [4]uint32{0x000000ff, 0x00000000, 0x00000000, 0x00000000}, FormatR8},
	{8, ddpfAlpha, [4]uint32{0x00000000, 0x00000000, 0x00000000, 0x000000ff}, FormatA8},
}

// OpenGL internal-format constants used by the KTX tables. Values per the
// Khronos registry.
const (
	glAlpha     = 0x1906
	glRed       = 0x1903
	glLuminance = 0x1909
	glRGB       = 0x1907
	glRGBA      = 0x1908

	glR8         = 0x8229
	glR16        = 0x822A
	glRG8        = 0x822B
	glRG16       = 0x822C
	glR16F       = 0x822D
	glR32F       = 0x822E
	glRG16F      = 0x822F
	glRGB8       = 0x8051
	glRGBA8      = 0x8058
	glRGB10A2    = 0x8059
	glRGBA16     = 0x805B
	glAlpha8     = 0x803C
	glBGRA       = 0x80E1
	glRGBA16F    = 0x881A
	glR11G11B10F = 0x8C3A
	glRG8Snorm   = 0x8F95
	glRGBA8Snorm = 0x8F97
	glRG16Snorm  = 0x8F99

	glCompressedRGBS3TCDXT1          = 0x83F0
	glCompressedRGBAS3TCDXT1         = 0x83F1
	glCompressedRGBAS3TCDXT3         = 0x83F2
	glCompressedRGBAS3TCDXT5         = 0x83F3
	glCompressedRedRGTC1             = 0x8DBB
	glCompressedRGRGTC2              = 0x8DBD
	glCompressedRGBABPTCUnorm        = 0x8E8C
	glCompressedRGBBPTCUnsignedFloat = 0x8E8F

	glETC1RGB8               = 0x8D64
	glCompressedRGB8ETC2     = 0x9274
	glCompressedRGBA1ETC2    = 0x9276
	glCompressedRGBA8ETC2EAC = 0x9278

	glCompressedRGBPVRTC4BPPV1  = 0x8C00
	glCompressedRGBPVRTC2BPPV1  = 0x8C01
	glCompressedRGBAPVRTC4BPPV1 = 0x8C02
	glCompressedRGBAPVRTC2BPPV1 = 0x8C03
	glCompressedRGBAPVRTC2BPPV2 = 0x9137
	glCompressedRGBAPVRTC4BPPV2 = 0x9138

	glATCRGB                   = 0x8C92
	glATCRGBAExplicitAlpha     = 0x8C93
	glATCRGBAInterpolatedAlpha = 0x87EE

	glCompressedRGBAASTC4x4  = 0x93B0
	glCompressedRGBAASTC5x5  = 0x93B2
	glCompressedRGBAASTC6x6  = 0x93B4
	glCompressedRGBAASTC8x5  = 0x93B5
	glCompressedRGBAASTC8x6  = 0x93B6
	glCompressedRGBAASTC10x5 = 0x93B8
)

// ktxFormatEntry translates a KTX glInternalFormat.
type ktxFormatEntry struct {
	internalFormat uint32
	format         Format
}

var ktxInternalFormats = []ktxFormatEntry{
	{glCompressedRGBAS3TCDXT1, FormatBC1},
	{glCompressedRGBAS3TCDXT3, FormatBC2},
	{glCompressedRGBAS3TCDXT5, FormatBC3},
	{glCompressedRedRGTC1, FormatBC4},
	{glCompressedRGRGTC2, FormatBC5},
	{glCompressedRGBBPTCUnsignedFloat, FormatBC6H},
	{glCompressedRGBABPTCUnorm, FormatBC7},
	{glETC1RGB8, FormatETC1},
	{glCompressedRGB8ETC2, FormatETC2},
	{glCompressedRGBA8ETC2EAC, FormatETC2A},
	{glCompressedRGBA1ETC2, FormatETC2A1},
	{glCompressedRGBPVRTC2BPPV1, FormatPTC12},
	{glCompressedRGBPVRTC4BPPV1, FormatPTC14},
	{glCompressedRGBAPVRTC2BPPV1, FormatPTC12A},
	{glCompressedRGBAPVRTC4BPPV1, FormatPTC14A},
	{glCompressedRGBAPVRTC2BPPV2, FormatPTC22},
	{glCompressedRGBAPVRTC4BPPV2, FormatPTC24},
	{glATCRGB, FormatATC},
	{glATCRGBAExplicitAlpha, FormatATCE},
	{glATCRGBAInterpolatedAlpha, FormatATCI},
	{glCompressedRGBAASTC4x4, FormatASTC4x4},
	{glCompressedRGBAASTC5x5, FormatASTC5x5},
	{glCompressedRGBAASTC6x6, FormatASTC6x6},
	{glCompressedRGBAASTC8x5, FormatASTC8x5},
	{glCompressedRGBAASTC8x6, FormatASTC8x6},
	{glCompressedRGBAASTC10x5, FormatASTC10x5},
	{glAlpha8, FormatA8},
	{glR8, FormatR8},
	{glRGBA8, FormatRGBA8},
	{glRGBA8Snorm, FormatRGBA8S},
	{glRG16, FormatRG16},
	{glRGB8, FormatRGB8},
	{glR16, FormatR16},
	{glR32F, FormatR32F},
	{glR16F, FormatR16F},
	{glRG16F, FormatRG16F},
	{glRG16Snorm, FormatRG16S},
	{glRGBA16F, FormatRGBA16F},
	{glRGBA16, FormatRGBA16},
	{glBGRA, FormatBGRA8},
	{glRGB10A2, FormatRGB10A2},
	{glR11G11B10F, FormatRG11B10F},
	{glRG8, FormatRG8},
	{glRG8Snorm, FormatRG8S},
}

// ktxFallbackFormats covers files that store a generic unsized enum in the
// internal-format field. Consulted only when the primary table misses.
var ktxFallbackFormats = []ktxFormatEntry{
	{glAlpha, FormatA8},
	{glRed, FormatR8},
	{glLuminance, FormatR8},
	{glRGB, FormatRGB8},
	{glRGBA, FormatRGBA8},
	{glCompressedRGBS3TCDXT1, FormatBC1},
}
