package audio

import (
	"testing"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("SERPENT_AUDIO_ENABLED", "false")
	t.Setenv("SERPENT_MASTER_VOLUME", "80")
	t.Setenv("SERPENT_SFX_VOLUMES", `{"kill": 0.25, "eat": 3}`)

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundKill] != 0.25 {
		t.Errorf("Expected kill volume 0.25, got %f", cfg.EffectVolumes[SoundKill])
	}
	if cfg.EffectVolumes[SoundEat] != 1 {
		t.Errorf("Expected eat volume clamped to 1, got %f", cfg.EffectVolumes[SoundEat])
	}
	if cfg.EffectVolumes[SoundFeed] != 0.5 {
		t.Errorf("Expected untouched feed volume 0.5, got %f", cfg.EffectVolumes[SoundFeed])
	}
}

func TestLoadAudioConfigInvalidEnv(t *testing.T) {
	t.Setenv("SERPENT_AUDIO_ENABLED", "maybe")
	t.Setenv("SERPENT_MASTER_VOLUME", "loud")
	t.Setenv("SERPENT_SFX_VOLUMES", "{not json")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Error("Expected invalid bool to be ignored")
	}
	if cfg.MasterVolume != def.MasterVolume {
		t.Errorf("Expected master volume %f, got %f", def.MasterVolume, cfg.MasterVolume)
	}
}

func TestMasterVolumeClamped(t *testing.T) {
	t.Setenv("SERPENT_MASTER_VOLUME", "150")
	if got := LoadAudioConfig().MasterVolume; got != 1 {
		t.Errorf("Expected 1, got %f", got)
	}
	t.Setenv("SERPENT_MASTER_VOLUME", "-5")
	if got := LoadAudioConfig().MasterVolume; got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
}
