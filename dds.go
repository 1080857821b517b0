package texture

import (
	"encoding/binary"

	"github.com/deepteams/texture/internal/byteio"
)

// DDS wire-format constants, per Microsoft's documented layout. All
// multi-byte integers are little-endian.
const (
	ddsHeaderSize      = 124 // DDS_HEADER, including its own size field
	ddsPixelFormatSize = 32  // DDS_PIXELFORMAT sub-header
	ddsDX10HeaderSize  = 20  // DDS_HEADER_DXT10 extension

	// DDS_HEADER flags.
	ddsdCaps        = 0x1
	ddsdHeight      = 0x2
	ddsdWidth       = 0x4
	ddsdPixelFormat = 0x1000
	ddsdMipmapCount = 0x20000
	ddsdDepth       = 0x800000

	ddsdRequired = ddsdCaps | ddsdHeight | ddsdWidth | ddsdPixelFormat

	// DDS_PIXELFORMAT flags.
	ddpfAlphaPixels = 0x1
	ddpfAlpha       = 0x2
	ddpfFourCC      = 0x4
	ddpfRGB         = 0x40
	ddpfYUV         = 0x200
	ddpfLuminance   = 0x20000
	ddpfBumpDUDV    = 0x80000

	// caps1.
	ddsCapsComplex = 0x8
	ddsCapsTexture = 0x1000
	ddsCapsMipmap  = 0x400000

	// caps2. A cubemap must carry all six face bits.
	ddsCaps2Cubemap  = 0x200
	ddsCaps2AllFaces = 0x400 | 0x800 | 0x1000 | 0x2000 | 0x4000 | 0x8000
	ddsCaps2Volume   = 0x200000

	// DX10 extension miscFlag.
	ddsDX10MiscTextureCube = 0x4
)

var fourCCDX10 = FourCC('D', 'X', '1', '0')

// Field offsets within the 124-byte header, counted from its size field.
const (
	ddsOffSize     = 0
	ddsOffFlags    = 4
	ddsOffHeight   = 8
	ddsOffWidth    = 12
	ddsOffPitch    = 16
	ddsOffDepth    = 20
	ddsOffMipCount = 24
	// 11 reserved DWORDs at 28..71.
	ddsOffPFSize     = 72
	ddsOffPFFlags    = 76
	ddsOffPFFourCC   = 80
	ddsOffPFBitCount = 84
	ddsOffPFRMask    = 88
	ddsOffPFGMask    = 92
	ddsOffPFBMask    = 96
	ddsOffPFAMask    = 100
	ddsOffCaps1      = 104
	ddsOffCaps2      = 108
	ddsOffCaps3      = 112
	ddsOffCaps4      = 116
	// 1 reserved DWORD at 120.
)

// parseDDS reads the primary header and optional DX10 extension. r is
// positioned just past the 4-byte magic.
func parseDDS(r *byteio.Reader, data []byte) (*Descriptor, error) {
	var hdr [ddsHeaderSize]byte
	if r.Read(hdr[:]) != ddsHeaderSize {
		return nil, ErrDDSHeaderSize
	}
	u32 := func(off int) uint32 { return binary.LittleEndian.Uint32(hdr[off:]) }

	if u32(ddsOffSize) != ddsHeaderSize {
		return nil, ErrDDSHeaderSize
	}
	if u32(ddsOffFlags)&ddsdRequired != ddsdRequired {
		return nil, ErrDDSHeaderFlags
	}
	if u32(ddsOffPFSize) != ddsPixelFormatSize {
		return nil, ErrDDSPixelFormat
	}
	caps1 := u32(ddsOffCaps1)
	if caps1&ddsCapsTexture == 0 {
		return nil, ErrDDSCaps
	}
	caps2 := u32(ddsOffCaps2)
	cubemap := caps2&ddsCaps2Cubemap != 0
	if cubemap && caps2&ddsCaps2AllFaces != ddsCaps2AllFaces {
		return nil, ErrDDSIncompleteCubemap
	}

	pfFlags := u32(ddsOffPFFlags)
	pfFourCC := u32(ddsOffPFFourCC)

	// Optional 20-byte DX10 extension.
	var dx10 [ddsDX10HeaderSize]byte
	hasDX10 := pfFlags&ddpfFourCC != 0 && pfFourCC == fourCCDX10
	if hasDX10 {
		if r.Read(dx10[:]) != ddsDX10HeaderSize {
			return nil, ErrDDSHeaderSize
		}
	}

	format, srgb, err := resolveDDSFormat(hdr[:], dx10[:], hasDX10)
	if err != nil {
		return nil, err
	}

	layers := 1
	if hasDX10 {
		if n := binary.LittleEndian.Uint32(dx10[12:]); n > 1 {
			layers = int(n)
		}
		if binary.LittleEndian.Uint32(dx10[8:])&ddsDX10MiscTextureCube != 0 {
			cubemap = true
		}
	}

	depth := int(u32(ddsOffDepth))
	if depth < 1 {
		depth = 1
	}
	if cubemap && depth > 1 {
		return nil, ErrDDSCubeVolume
	}

	mips := 1
	if caps1&ddsCapsMipmap != 0 {
		if n := u32(ddsOffMipCount); n > 1 {
			mips = int(n)
		}
	}

	width := int(u32(ddsOffWidth))
	if width < 1 {
		width = 1
	}
	height := int(u32(ddsOffHeight))
	if height < 1 {
		height = 1
	}

	dataOffset := 4 + ddsHeaderSize
	if hasDX10 {
		dataOffset += ddsDX10HeaderSize
	}

	return &Descriptor{
		Format:     format,
		Source:     SourceDDS,
		Width:      width,
		Height:     height,
		Depth:      depth,
		Layers:     layers,
		Mips:       mips,
		BPP:        blockInfos[format].BPP,
		Cubemap:    cubemap,
		SRGB:       srgb,
		HasAlpha:   pfFlags&ddpfAlphaPixels != 0,
		DataOffset: dataOffset,
		DataSize:   len(data) - dataOffset,
		data:       data,
	}, nil
}

// resolveDDSFormat translates the header's format identification into a
// canonical format. Resolution order: DXGI ID when a DX10 header carries
// one, else the FourCC table, else the legacy bit-mask table.
func resolveDDSFormat(hdr, dx10 []byte, hasDX10 bool) (Format, bool, error) {
	if hasDX10 {
		if dxgi := binary.LittleEndian.Uint32(dx10[0:]); dxgi != 0 {
			for _, e := range ddsDXGIFormats {
				if e.dxgiFormat == dxgi {
					return e.format, e.srgb, nil
				}
			}
			return 0, false, ErrDDSUnknownFormat
		}
	}

	pfFlags := binary.LittleEndian.Uint32(hdr[ddsOffPFFlags:])
	if pfFlags&ddpfFourCC != 0 {
		fourCC := binary.LittleEndian.Uint32(hdr[ddsOffPFFourCC:])
		for _, e := range ddsFourCCs {
			if e.fourCC == fourCC {
				return e.format, e.srgb, nil
			}
		}
		return 0, false, ErrDDSUnknownFormat
	}

	bitCount := binary.LittleEndian.Uint32(hdr[ddsOffPFBitCount:])
	masks := [4]uint32{
		binary.LittleEndian.Uint32(hdr[ddsOffPFRMask:]),
		binary.LittleEndian.Uint32(hdr[ddsOffPFGMask:]),
		binary.LittleEndian.Uint32(hdr[ddsOffPFBMask:]),
		binary.LittleEndian.Uint32(hdr[ddsOffPFAMask:]),
	}
	for _, e := range ddsPixelFormats {
		if e.bitCount == bitCount && e.flags == pfFlags && e.masks == masks {
			return e.format, false, nil
		}
	}
	return 0, false, ErrDDSUnknownFormat
}
