package texture

import (
	"encoding/binary"
	"errors"

	"github.com/deepteams/texture/internal/byteio"
)

// Errors returned by the parser. The DDS and KTX parsers each fail with a
// distinct sentinel per validation step.
var (
	ErrUnknownFormat = errors.New("texture: unknown texture format")

	ErrDDSHeaderSize        = errors.New("texture: dds: invalid header size")
	ErrDDSHeaderFlags       = errors.New("texture: dds: invalid header flags")
	ErrDDSPixelFormat       = errors.New("texture: dds: invalid pixel format block")
	ErrDDSCaps              = errors.New("texture: dds: unsupported caps (not a texture)")
	ErrDDSIncompleteCubemap = errors.New("texture: dds: incomplete cubemap")
	ErrDDSCubeVolume        = errors.New("texture: dds: cubemap and volume texture are mutually exclusive")
	ErrDDSUnknownFormat     = errors.New("texture: dds: unknown pixel format")

	ErrKTXHeaderSize        = errors.New("texture: ktx: invalid header size")
	ErrKTXIdentifier        = errors.New("texture: ktx: invalid identifier")
	ErrKTXEndianness        = errors.New("texture: ktx: little-endian files are not supported")
	ErrKTXIncompleteCubemap = errors.New("texture: ktx: incomplete cubemap")
	ErrKTXUnknownFormat     = errors.New("texture: ktx: unsupported internal format")
	ErrKTXImageSize         = errors.New("texture: ktx: image size mismatch")

	ErrSubImageRange  = errors.New("texture: sub-image index out of range")
	ErrShortPixelData = errors.New("texture: pixel data truncated")
)

// Source identifies the container a descriptor was parsed from.
type Source int

const (
	SourceDDS Source = iota + 1
	SourceKTX
)

func (s Source) String() string {
	switch s {
	case SourceDDS:
		return "DDS"
	case SourceKTX:
		return "KTX"
	default:
		return "undefined"
	}
}

// Container magic words. The KTX value is the first four bytes of the
// 12-byte identifier.
var (
	magicDDS = FourCC('D', 'D', 'S', ' ')
	magicKTX = FourCC(0xAB, 'K', 'T', 'X')
)

// Descriptor describes the logical texture held by a parsed container.
// It borrows the input buffer (zero-copy); the caller keeps ownership and
// must keep the buffer alive for as long as any SubImage derived from it.
type Descriptor struct {
	Format Format
	Source Source

	Width  int // >= 1
	Height int // >= 1
	Depth  int // >= 1; > 1 means a 3D texture
	Layers int // array length, >= 1
	Mips   int // >= 1
	BPP    int // convenience copy of BlockInfo().BPP

	Cubemap  bool // six faces; mutually exclusive with Depth > 1
	SRGB     bool
	HasAlpha bool

	// DataOffset/DataSize span the pixel payload. For KTX the span still
	// contains the interleaved per-mip image-size words and padding, so it
	// is a byte range, not a sum of pixel bytes.
	DataOffset int
	DataSize   int

	// MetadataOffset/MetadataSize locate the KTX key/value block, which is
	// recorded but never interpreted. Both are 0 for DDS.
	MetadataOffset int
	MetadataSize   int

	data []byte
}

// Parse reads a DDS or KTX (v1) container from data and returns its
// descriptor. The buffer must hold the complete file image; it is borrowed,
// never copied or mutated. On failure the descriptor is nil.
func Parse(data []byte) (*Descriptor, error) {
	r := byteio.NewReader(data)
	var magic [4]byte
	if r.Read(magic[:]) != len(magic) {
		return nil, ErrUnknownFormat
	}
	switch binary.LittleEndian.Uint32(magic[:]) {
	case magicDDS:
		return parseDDS(r, data)
	case magicKTX:
		return parseKTX(r, data)
	default:
		return nil, ErrUnknownFormat
	}
}

// Metadata returns the KTX key/value block as a borrowed sub-slice of the
// input buffer, or nil for DDS descriptors and KTX files without metadata.
func (d *Descriptor) Metadata() []byte {
	if d.MetadataSize == 0 {
		return nil
	}
	return d.data[d.MetadataOffset : d.MetadataOffset+d.MetadataSize]
}
