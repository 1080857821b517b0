// Package texture provides a zero-copy parser for GPU texture containers:
// DirectDraw Surface (DDS, including the DX10/DXGI extension) and Khronos
// Texture version 1 (KTX).
//
// The parser consumes a fully materialized byte buffer and produces a
// Descriptor of the logical texture plus a locator for any
// (layer, face-or-slice, mip) sub-image. Pixel data is never copied,
// decoded, or allocated; sub-images are views into the caller's buffer.
//
// The package supports:
//   - DDS legacy pixel formats, FourCC variants, and DX10 DXGI formats
//   - KTX v1 (big-endian reference files)
//   - Block-compressed formats (BCn, ETC, PVRTC, ATC, ASTC) and common
//     uncompressed formats
//   - 2D, 3D, cubemap, and array textures with mip chains
//
// Basic usage:
//
//	desc, err := texture.Parse(data)
//	if err != nil { ... }
//	img, err := desc.SubImage(0, 0, 0) // first layer, face/slice, mip
//
// Writing containers and decoding compressed blocks are out of scope.
package texture
