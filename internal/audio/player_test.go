package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func TestDecodeWav(t *testing.T) {
	file := filepath.Join(t.TempDir(), "silence.wav")
	f, err := os.Create(file)
	if nil != err {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(44100), format); nil != err {
		t.Fatal(err)
	}
	f.Close()

	streamer, decoded, err := Decode(file)
	if nil != err {
		t.Fatal(err)
	}
	defer streamer.Close()
	if decoded.SampleRate != 44100 {
		t.Errorf("Expected 44100, got %v", decoded.SampleRate)
	}
	if streamer.Len() != 44100 {
		t.Errorf("Expected one second of samples, got %v", streamer.Len())
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := Decode(filepath.Join(t.TempDir(), "missing.ogg")); nil == err {
		t.Error("Expected a missing file to fail")
	}
	file := filepath.Join(t.TempDir(), "track.flac")
	if err := os.WriteFile(file, []byte("fLaC"), 0o644); nil != err {
		t.Fatal(err)
	}
	if _, _, err := Decode(file); nil == err {
		t.Error("Expected an unsupported format to fail")
	}
}
