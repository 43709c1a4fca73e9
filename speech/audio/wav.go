package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Clip holds decoded audio ready for the output device: interleaved 16-bit
// little-endian PCM.
type Clip struct {
	Data       []byte
	SampleRate int
	Channels   int
}

// DecodeWAV parses a RIFF/WAVE stream and returns its PCM payload. Only
// 16-bit PCM (format tag 1) with one or two channels is supported; sample
// rate is taken as-is from the header.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	var riff [4]byte
	if err := binary.Read(r, binary.LittleEndian, &riff); err != nil {
		return nil, fmt.Errorf("read RIFF ID: %w", err)
	}
	if string(riff[:]) != "RIFF" {
		return nil, errors.New("not a RIFF file")
	}

	var fileSize uint32
	if err := binary.Read(r, binary.LittleEndian, &fileSize); err != nil {
		return nil, fmt.Errorf("read file size: %w", err)
	}

	var wave [4]byte
	if err := binary.Read(r, binary.LittleEndian, &wave); err != nil {
		return nil, fmt.Errorf("read WAVE ID: %w", err)
	}
	if string(wave[:]) != "WAVE" {
		return nil, errors.New("not a WAVE file")
	}

	clip := &Clip{}
	var fmtFound, dataFound bool

	for !(fmtFound && dataFound) {
		var chunkID [4]byte
		if err := binary.Read(r, binary.LittleEndian, &chunkID); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("read chunk ID: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, fmt.Errorf("read chunk size: %w", err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if err := readFmtChunk(r, chunkSize, clip); err != nil {
				return nil, err
			}
			fmtFound = true

		case "data":
			if !fmtFound {
				return nil, errors.New("data chunk before fmt chunk")
			}
			clip.Data = make([]byte, chunkSize)
			if _, err := io.ReadFull(r, clip.Data); err != nil {
				return nil, fmt.Errorf("read PCM data: %w", err)
			}
			dataFound = true

		default:
			// Skip unknown chunks; chunk bodies align to even offsets.
			skip := int64(chunkSize)
			if chunkSize%2 != 0 {
				skip++
			}
			if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("skip chunk %q: %w", chunkID, err)
			}
		}
	}

	if !fmtFound {
		return nil, errors.New("missing fmt chunk")
	}
	if !dataFound {
		return nil, errors.New("missing data chunk")
	}
	return clip, nil
}

func readFmtChunk(r io.ReadSeeker, size uint32, clip *Clip) error {
	var audioFormat uint16
	if err := binary.Read(r, binary.LittleEndian, &audioFormat); err != nil {
		return fmt.Errorf("read audio format: %w", err)
	}
	if audioFormat != 1 {
		return fmt.Errorf("unsupported audio format %d (only PCM=1 supported)", audioFormat)
	}

	var channels uint16
	if err := binary.Read(r, binary.LittleEndian, &channels); err != nil {
		return fmt.Errorf("read channel count: %w", err)
	}
	if channels != 1 && channels != 2 {
		return fmt.Errorf("unsupported channel count %d", channels)
	}
	clip.Channels = int(channels)

	var sampleRate uint32
	if err := binary.Read(r, binary.LittleEndian, &sampleRate); err != nil {
		return fmt.Errorf("read sample rate: %w", err)
	}
	clip.SampleRate = int(sampleRate)

	// Skip byteRate (4) and blockAlign (2).
	if _, err := r.Seek(6, io.SeekCurrent); err != nil {
		return fmt.Errorf("skip byte rate / block align: %w", err)
	}

	var bitsPerSample uint16
	if err := binary.Read(r, binary.LittleEndian, &bitsPerSample); err != nil {
		return fmt.Errorf("read bits per sample: %w", err)
	}
	if bitsPerSample != 16 {
		return fmt.Errorf("unsupported bits per sample %d (only 16 supported)", bitsPerSample)
	}

	consumed := uint32(16)
	if size > consumed {
		if _, err := r.Seek(int64(size-consumed), io.SeekCurrent); err != nil {
			return fmt.Errorf("skip extra fmt bytes: %w", err)
		}
	}
	return nil
}
