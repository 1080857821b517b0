package texture

import (
	"bytes"
	"encoding/binary"

	"github.com/deepteams/texture/internal/byteio"
)

// KTX v1 wire-format constants, per the Khronos KTX 1 specification.
// The reference files are big-endian; all header fields decode as such.
const (
	ktxHeaderSize = 52 // packed header following the 12-byte identifier

	// Endianness word as read big-endian from a reference file. A file
	// written the other way round reads as 0x01020304 and is rejected.
	ktxEndianRef = 0x04030201
)

// ktxIdentifierTail is the identifier after the 4-byte magic:
// "«KTX 11»\r\n\x1A\n" minus its first four bytes.
var ktxIdentifierTail = []byte{' ', '1', '1', 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// Header field offsets within the 52-byte block.
const (
	ktxOffEndianness     = 0
	ktxOffGLType         = 4
	ktxOffGLTypeSize     = 8
	ktxOffGLFormat       = 12
	ktxOffInternalFormat = 16
	ktxOffBaseInternal   = 20
	ktxOffWidth          = 24
	ktxOffHeight         = 28
	ktxOffDepth          = 32
	ktxOffArrayCount     = 36
	ktxOffFaceCount      = 40
	ktxOffMipCount       = 44
	ktxOffMetadataSize   = 48
)

// parseKTX reads the identifier tail, header, and key/value block extent.
// r is positioned just past the 4-byte magic.
func parseKTX(r *byteio.Reader, data []byte) (*Descriptor, error) {
	var ident [8]byte // identifier bytes after the magic
	if r.Read(ident[:]) != len(ident) {
		return nil, ErrKTXHeaderSize
	}
	if !bytes.Equal(ident[:], ktxIdentifierTail) {
		return nil, ErrKTXIdentifier
	}

	var hdr [ktxHeaderSize]byte
	if r.Read(hdr[:]) != ktxHeaderSize {
		return nil, ErrKTXHeaderSize
	}
	u32 := func(off int) uint32 { return binary.BigEndian.Uint32(hdr[off:]) }

	if u32(ktxOffEndianness) != ktxEndianRef {
		return nil, ErrKTXEndianness
	}

	faces := u32(ktxOffFaceCount)
	if faces != 1 && faces != 6 {
		return nil, ErrKTXIncompleteCubemap
	}

	format, ok := resolveKTXFormat(u32(ktxOffInternalFormat))
	if !ok {
		return nil, ErrKTXUnknownFormat
	}

	metadataSize := int(u32(ktxOffMetadataSize))
	metadataOffset := r.Offset()
	if r.Skip(metadataSize) != metadataSize {
		return nil, ErrKTXHeaderSize
	}
	dataOffset := r.Offset()

	clamp := func(v uint32) int {
		if v < 1 {
			return 1
		}
		return int(v)
	}

	return &Descriptor{
		Format:         format,
		Source:         SourceKTX,
		Width:          clamp(u32(ktxOffWidth)),
		Height:         clamp(u32(ktxOffHeight)),
		Depth:          clamp(u32(ktxOffDepth)),
		Layers:         clamp(u32(ktxOffArrayCount)),
		Mips:           clamp(u32(ktxOffMipCount)),
		BPP:            blockInfos[format].BPP,
		Cubemap:        faces == 6,
		HasAlpha:       format.hasAlphaDefault(),
		DataOffset:     dataOffset,
		DataSize:       len(data) - dataOffset,
		MetadataOffset: metadataOffset,
		MetadataSize:   metadataSize,
		data:           data,
	}, nil
}

// resolveKTXFormat translates a glInternalFormat via the primary table,
// falling back to the generic unsized enums.
func resolveKTXFormat(internalFormat uint32) (Format, bool) {
	for _, e := range ktxInternalFormats {
		if e.internalFormat == internalFormat {
			return e.format, true
		}
	}
	for _, e := range ktxFallbackFormats {
		if e.internalFormat == internalFormat {
			return e.format, true
		}
	}
	return 0, false
}
