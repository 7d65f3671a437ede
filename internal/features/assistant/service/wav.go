package service

import "encoding/binary"

// Формат аудио, который отдаёт модель синтеза речи
const (
	SpeechSampleRate = 24000
	SpeechChannels   = 1
	speechBitDepth   = 16
)

// EncodeWAV wraps raw 16-bit little-endian PCM into a RIFF/WAVE container so
// any client can play it without decoding the bare stream itself.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	blockAlign := channels * speechBitDepth / 8
	byteRate := sampleRate * blockAlign

	buf := make([]byte, 0, 44+len(pcm))
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(pcm)))
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1) // PCM
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(sampleRate))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(blockAlign))
	buf = binary.LittleEndian.AppendUint16(buf, speechBitDepth)

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(pcm)))
	buf = append(buf, pcm...)

	return buf
}
