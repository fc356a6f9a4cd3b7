package cmd

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/drumforge/kickgen/internal/config"
	"github.com/drumforge/kickgen/internal/wav"
)

func TestRunGenerateDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "out")

	opts := GenerateOptions{
		ConfigPath: filepath.Join(tmpDir, "kicks.yaml"), // missing, uses defaults
		OutputDir:  outDir,
		Seed:       1,
	}
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}

	// All four default variants are half a second at 44100 Hz:
	// 44-byte header plus 22050 frames of 2 bytes.
	const wantSize = 44 + 22050*2
	for _, name := range []string{"kick1.wav", "kick2.wav", "kick3.wav", "kick4.wav"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
		if info.Size() != wantSize {
			t.Errorf("%s is %d bytes, want %d", name, info.Size(), wantSize)
		}
	}
}

func TestRunGeneratePeakFrame(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "out")

	cfg := &config.Config{
		OutputDir:  outDir,
		SampleRate: 44100,
		Seed:       1,
		Kicks: []config.Kick{
			{Name: "kick1", BaseFrequency: 55, Decay: 0.4, Duration: 0.5},
		},
	}
	cfgPath := filepath.Join(tmpDir, "kicks.yaml")
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatal(err)
	}

	if err := RunGenerate(GenerateOptions{ConfigPath: cfgPath}); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "kick1.wav"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(data) != 44144 {
		t.Fatalf("file is %d bytes, want 44144", len(data))
	}

	// The normalized peak quantizes to ±32767 at exactly one frame.
	peaks := 0
	for off := wav.HeaderSize; off < len(data); off += 2 {
		s := int16(binary.LittleEndian.Uint16(data[off:]))
		if s == 32767 || s == -32767 {
			peaks++
		}
	}
	if peaks != 1 {
		t.Errorf("found %d peak frames, want exactly 1", peaks)
	}
}

func TestRunGenerateOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "out")

	opts := GenerateOptions{
		ConfigPath: filepath.Join(tmpDir, "kicks.yaml"),
		OutputDir:  outDir,
		Seed:       1,
	}
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// Stomp one output, then regenerate over it.
	target := filepath.Join(outDir, "kick1.wav")
	if err := os.WriteFile(target, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := RunGenerate(opts); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 44+22050*2 {
		t.Errorf("expected regenerated file, got %d bytes", info.Size())
	}
}

func TestRunGenerateReproducibleWithSeed(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "kicks.yaml")

	outA := filepath.Join(tmpDir, "a")
	outB := filepath.Join(tmpDir, "b")

	for _, out := range []string{outA, outB} {
		opts := GenerateOptions{ConfigPath: cfgPath, OutputDir: out, Seed: 42}
		if err := RunGenerate(opts); err != nil {
			t.Fatalf("RunGenerate failed: %v", err)
		}
	}

	for _, name := range []string{"kick1.wav", "kick2.wav", "kick3.wav", "kick4.wav"} {
		a, err := os.ReadFile(filepath.Join(outA, name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(outB, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("%s differs between identically seeded runs", name)
		}
	}
}

func TestRunGenerateInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "kicks.yaml")
	data := []byte("kicks:\n  - name: bad\n    baseFrequency: -55\n    decay: 0.4\n")
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := RunGenerate(GenerateOptions{ConfigPath: cfgPath}); err == nil {
		t.Error("expected error for invalid preset file")
	}
}

func TestRunGenerateOutputDirNotCreatable(t *testing.T) {
	tmpDir := t.TempDir()

	// A regular file where the output directory should go.
	blocked := filepath.Join(tmpDir, "out")
	if err := os.WriteFile(blocked, []byte("file"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := GenerateOptions{
		ConfigPath: filepath.Join(tmpDir, "kicks.yaml"),
		OutputDir:  blocked,
		Seed:       1,
	}
	if err := RunGenerate(opts); err == nil {
		t.Error("expected error when the output directory cannot be created")
	}
}
