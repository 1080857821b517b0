package texture

import (
	"encoding/binary"

	"github.com/deepteams/texture/internal/byteio"
)

// SubImage is a view of one (layer, face-or-slice, mip) image inside the
// parsed buffer. Data is a sub-slice of the input, valid for as long as the
// caller keeps that buffer alive.
type SubImage struct {
	Data     []byte
	Width    int
	Height   int
	RowPitch int // bytes per row of texels: width * bpp / 8
}

// mipExtent returns the byte size of one mip image for bi, along with the
// block-rounded dimensions actually stored. Dimensions round up to whole
// blocks and clamp to the format's minimum block count.
func mipExtent(bi BlockInfo, width, height int) (size, w, h int) {
	w = ((width + bi.BlockWidth - 1) / bi.BlockWidth) * bi.BlockWidth
	h = ((height + bi.BlockHeight - 1) / bi.BlockHeight) * bi.BlockHeight
	if min := bi.MinBlockX * bi.BlockWidth; w < min {
		w = min
	}
	if min := bi.MinBlockY * bi.BlockHeight; h < min {
		h = min
	}
	size = (w / bi.BlockWidth) * (h / bi.BlockHeight) * bi.BlockSize
	return size, w, h
}

// halve steps a dimension down one mip level, never below 1.
func halve(v int) int {
	if v >>= 1; v < 1 {
		return 1
	}
	return v
}

// align4 returns the padding needed to bring off up to a 4-byte boundary.
func align4(off int) int {
	return (4 - off&3) & 3
}

// SubImage locates one sub-image without touching unrelated bytes. For
// cubemaps sliceOrFace selects the face (+X, -X, +Y, -Y, +Z, -Z); for 3D
// textures it selects the depth slice. Out-of-range indices return
// ErrSubImageRange.
func (d *Descriptor) SubImage(layer, sliceOrFace, mip int) (SubImage, error) {
	if layer < 0 || layer >= d.Layers || mip < 0 || mip >= d.Mips || sliceOrFace < 0 {
		return SubImage{}, ErrSubImageRange
	}
	if d.Cubemap {
		if sliceOrFace >= 6 {
			return SubImage{}, ErrSubImageRange
		}
	} else if sliceOrFace >= d.Depth {
		return SubImage{}, ErrSubImageRange
	}

	switch d.Source {
	case SourceKTX:
		return d.subImageKTX(layer, sliceOrFace, mip)
	default:
		return d.subImageDDS(layer, sliceOrFace, mip)
	}
}

// subImageDDS walks the DDS payload, which is laid out
// layer-major: for each layer, for each face, for each mip, for each slice.
func (d *Descriptor) subImageDDS(layer, sliceOrFace, mip int) (SubImage, error) {
	bi := blockInfos[d.Format]
	faces := 1
	wantFace, wantSlice := 0, sliceOrFace
	if d.Cubemap {
		faces = 6
		wantFace, wantSlice = sliceOrFace, 0
	}

	off := d.DataOffset
	for l := 0; l < d.Layers; l++ {
		for f := 0; f < faces; f++ {
			w, h := d.Width, d.Height
			for m := 0; m < d.Mips; m++ {
				size, mw, mh := mipExtent(bi, w, h)
				if size < 0 { // block product overflowed on hostile dims
					return SubImage{}, ErrShortPixelData
				}
				for s := 0; s < d.Depth; s++ {
					if l == layer && f == wantFace && m == mip && s == wantSlice {
						if off+size > len(d.data) {
							return SubImage{}, ErrShortPixelData
						}
						return SubImage{
							Data:     d.data[off : off+size],
							Width:    mw,
							Height:   mh,
							RowPitch: mw * bi.BPP / 8,
						}, nil
					}
					off += size
					if off > len(d.data) {
						// The requested image lies past the buffer; every
						// later match would fail the same bounds check.
						return SubImage{}, ErrShortPixelData
					}
				}
				w, h = halve(w), halve(h)
			}
		}
	}
	return SubImage{}, ErrSubImageRange
}

// subImageKTX walks the KTX payload, which is mip-major: each mip starts
// with a 4-byte image-size word, then layer/face/slice images follow with
// 4-byte padding after each face and after each mip. The size words are
// re-read on every call; the parser records only where the payload starts.
func (d *Descriptor) subImageKTX(layer, sliceOrFace, mip int) (SubImage, error) {
	bi := blockInfos[d.Format]
	faces, slices := 1, d.Depth
	wantFace, wantSlice := 0, sliceOrFace
	if d.Cubemap {
		faces, slices = 6, 1
		wantFace, wantSlice = sliceOrFace, 0
	}

	r := byteio.NewReader(d.data)
	r.Skip(d.DataOffset)

	w, h := d.Width, d.Height
	for m := 0; m < d.Mips; m++ {
		var word [4]byte
		if r.Read(word[:]) != len(word) {
			return SubImage{}, ErrShortPixelData
		}
		imageSize := int(binary.BigEndian.Uint32(word[:]))
		size, mw, mh := mipExtent(bi, w, h)
		if size < 0 { // block product overflowed on hostile dims
			return SubImage{}, ErrShortPixelData
		}
		if imageSize != size*faces*slices {
			return SubImage{}, ErrKTXImageSize
		}
		for l := 0; l < d.Layers; l++ {
			for f := 0; f < faces; f++ {
				for s := 0; s < slices; s++ {
					if m == mip && l == layer && f == wantFace && s == wantSlice {
						off := r.Offset()
						if r.Remaining() < size {
							return SubImage{}, ErrShortPixelData
						}
						return SubImage{
							Data:     d.data[off : off+size],
							Width:    mw,
							Height:   mh,
							RowPitch: mw * bi.BPP / 8,
						}, nil
					}
					if r.Skip(size) != size {
						return SubImage{}, ErrShortPixelData
					}
				}
				r.Skip(align4(r.Offset())) // cube padding
			}
		}
		r.Skip(align4(r.Offset())) // mip padding
		w, h = halve(w), halve(h)
	}
	return SubImage{}, ErrSubImageRange
}
