package indexcache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cache file layout: 4-byte magic, 1-byte format version, then one record
// per sample in index order (1 byte face, 2 bytes x, 2 bytes y, big-endian),
// then an 8-byte big-endian xxhash64 of everything before it.
const (
	headerSize  = 5
	sampleSize  = 5
	trailerSize = 8

	formatVersion = 1
)

var magic = [4]byte{'O', 'R', 'B', 'X'}

var (
	errWrongSize   = zerr.New("cache entry has wrong size")
	errBadHeader   = zerr.New("cache entry has unknown header")
	errBadChecksum = zerr.New("cache entry checksum mismatch")
)

func encodedSize(cfg domain.Config) int {
	return headerSize + sampleSize*cfg.SampleCount() + trailerSize
}

func encode(idx *domain.SamplingIndex) []byte {
	data := make([]byte, encodedSize(idx.Config))
	copy(data, magic[:])
	data[4] = formatVersion

	off := headerSize
	for _, s := range idx.Samples {
		data[off] = byte(s.Face)
		binary.BigEndian.PutUint16(data[off+1:], s.X)
		binary.BigEndian.PutUint16(data[off+3:], s.Y)
		off += sampleSize
	}

	sum := xxhash.Sum64(data[:off])
	binary.BigEndian.PutUint64(data[off:], sum)
	return data
}

func decode(cfg domain.Config, data []byte) (*domain.SamplingIndex, error) {
	if len(data) != encodedSize(cfg) {
		err := zerr.With(errWrongSize, "size", len(data))
		return nil, zerr.With(err, "expected", encodedSize(cfg))
	}
	if [4]byte(data[:4]) != magic || data[4] != formatVersion {
		return nil, errBadHeader
	}

	payloadEnd := len(data) - trailerSize
	if xxhash.Sum64(data[:payloadEnd]) != binary.BigEndian.Uint64(data[payloadEnd:]) {
		return nil, errBadChecksum
	}

	samples := make([]domain.Sample, 0, cfg.SampleCount())
	for off := headerSize; off < payloadEnd; off += sampleSize {
		samples = append(samples, domain.Sample{
			Face: domain.FaceID(data[off]),
			X:    binary.BigEndian.Uint16(data[off+1:]),
			Y:    binary.BigEndian.Uint16(data[off+3:]),
		})
	}

	idx := &domain.SamplingIndex{Config: cfg, Samples: samples}
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	return idx, nil
}
