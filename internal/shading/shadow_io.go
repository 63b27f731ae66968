package shading

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
)

// "SHDW"
const shadowMagic = uint32(0x53484457)

const shadowVersion = uint32(1)

// EncodeShadowMap serializes a shadow map to a compressed binary blob so
// hosts can cache baked depth passes between runs instead of re-rendering
// static casters every launch.
func EncodeShadowMap(sm *ShadowMap) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	if err := binary.Write(gz, binary.LittleEndian, shadowMagic); err != nil {
		return nil, err
	}
	if err := binary.Write(gz, binary.LittleEndian, shadowVersion); err != nil {
		return nil, err
	}
	if err := binary.Write(gz, binary.LittleEndian, int32(sm.Size())); err != nil {
		return nil, err
	}
	if err := binary.Write(gz, binary.LittleEndian, sm.depth.depth); err != nil {
		return nil, err
	}

	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeShadowMap reconstructs a shadow map encoded by EncodeShadowMap.
func DecodeShadowMap(data []byte) (*ShadowMap, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var magic uint32
	if err := binary.Read(gz, binary.LittleEndian, &magic); err != nil {
		return nil, err
	}
	if magic != shadowMagic {
		return nil, fmt.Errorf("invalid shadow map magic: %x", magic)
	}

	var version uint32
	if err := binary.Read(gz, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != shadowVersion {
		return nil, fmt.Errorf("unsupported shadow map version: %d", version)
	}

	var size int32
	if err := binary.Read(gz, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	sm, err := NewShadowMap(int(size))
	if err != nil {
		return nil, err
	}
	if err := binary.Read(gz, binary.LittleEndian, sm.depth.depth); err != nil {
		return nil, err
	}
	return sm, nil
}
