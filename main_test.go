package main

import (
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/lanefall/internal/game"
)

func touch(t *testing.T, p string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0755); nil != err {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, nil, 0644); nil != err {
		t.Fatal(err)
	}
}

func TestFindSong(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "song", "chart.sm"))
	touch(t, filepath.Join(dir, "song", "music.OGG"))
	touch(t, filepath.Join(dir, "cover.png"))

	chart, audio, err := findSong(dir)
	if nil != err {
		t.Fatal(err)
	}
	if chart != filepath.Join(dir, "song", "chart.sm") {
		t.Errorf("Unexpected chart %v", chart)
	}
	if audio != filepath.Join(dir, "song", "music.OGG") {
		t.Errorf("Unexpected audio %v", audio)
	}

	if _, _, err := findSong(filepath.Join(dir, "song", "missing")); nil == err {
		t.Error("Expected a missing directory to fail")
	}
	empty := t.TempDir()
	touch(t, filepath.Join(empty, "music.mp3"))
	if _, _, err := findSong(empty); nil == err {
		t.Error("Expected a directory without a chart to fail")
	}
}

func TestResolveAudio(t *testing.T) {
	chart := &game.Chart{}
	if _, err := resolveAudio("/songs/a/chart.yaml", "", chart); nil == err {
		t.Error("Expected no audio to fail")
	}
	if a, _ := resolveAudio("/songs/a/chart.yaml", "/songs/a/x.mp3", chart); a != "/songs/a/x.mp3" {
		t.Errorf("Expected the found audio, got %v", a)
	}
	chart.Audio = "song.ogg"
	if a, _ := resolveAudio("/songs/a/chart.yaml", "/songs/a/x.mp3", chart); a != filepath.Join("/songs/a", "song.ogg") {
		t.Errorf("Expected the chart audio, got %v", a)
	}
	chart.Audio = "/music/song.ogg"
	if a, _ := resolveAudio("/songs/a/chart.yaml", "", chart); a != "/music/song.ogg" {
		t.Errorf("Expected the absolute chart audio, got %v", a)
	}
}
