package texture

import "testing"

// FuzzParse checks that arbitrary input never panics the parser or the
// locator, and that successful parses uphold the descriptor invariants.
func FuzzParse(f *testing.F) {
	f.Add([]byte("DDS "))
	f.Add([]byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, 0x0D, 0x0A, 0x1A, 0x0A})
	f.Add(ddsFixture{width: 16, height: 16, mips: 2, pfFlags: ddpfFourCC | ddpfAlphaPixels,
		fourCC: FourCC('D', 'X', 'T', '5'), payloadSize: 256 + 64}.build())
	f.Add(ddsFixture{width: 8, height: 8, pfFlags: ddpfRGB | ddpfAlphaPixels, bitCount: 32,
		masks: rgba8Masks(), caps2: ddsCubemapAllFaces, payloadSize: 6 * 256}.build())
	f.Add(ddsFixture{width: 16, height: 16, pfFlags: ddpfFourCC, fourCC: fourCCDX10,
		dx10: &ddsDX10Fixture{dxgiFormat: 99, dimension: 3, arraySize: 2}, payloadSize: 512}.build())

	f.Add(ktxFixture{internalFormat: glCompressedRGB8ETC2, width: 32, height: 32, mips: 6}.build(f))
	f.Add(ktxFixture{internalFormat: glRGBA8, width: 4, height: 4, faces: 6}.build(f))

	f.Fuzz(func(t *testing.T, data []byte) {
		desc, err := Parse(data)
		if err != nil {
			if desc != nil {
				t.Fatal("failed parse returned a descriptor")
			}
			return
		}
		if desc.Width < 1 || desc.Height < 1 || desc.Depth < 1 || desc.Layers < 1 || desc.Mips < 1 {
			t.Fatalf("descriptor violates >= 1 invariants: %+v", desc)
		}
		if desc.Cubemap && desc.Depth != 1 {
			t.Fatalf("cubemap with depth %d", desc.Depth)
		}

		// Hostile headers can claim huge counts; probe a bounded corner of
		// the index space instead of walking all of it.
		faceOrSlice := min(desc.Depth, 8)
		if desc.Cubemap {
			faceOrSlice = 6
		}
		for l := 0; l < min(desc.Layers, 8); l++ {
			for s := 0; s < faceOrSlice; s++ {
				for m := 0; m < min(desc.Mips, 8); m++ {
					sub, err := desc.SubImage(l, s, m)
					if err != nil {
						continue
					}
					if len(sub.Data) > len(data) {
						t.Fatalf("view of %d bytes from a %d-byte buffer", len(sub.Data), len(data))
					}
				}
			}
		}
	})
}
