package ui

import (
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{500, "500 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{1024 * 1024 * 1024, "1.0 GiB"},
		{-1, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatBytes(tt.input); got != tt.want {
				t.Errorf("FormatBytes(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitialProgressModel(t *testing.T) {
	model := initialProgressModel("model.safetensors", 4000)

	if model.label != "model.safetensors" {
		t.Errorf("model.label = %v, want model.safetensors", model.label)
	}
	if model.total != 4000 {
		t.Errorf("model.total = %v, want 4000", model.total)
	}
	if model.downloaded != 0 {
		t.Errorf("model.downloaded = %v, want 0", model.downloaded)
	}
	if model.done {
		t.Error("model.done = true, want false")
	}
}

func TestProgressModelUpdate(t *testing.T) {
	model := initialProgressModel("", 1000)

	updated, _ := model.Update(progressMsg(500))
	m := updated.(progressModel)
	if m.downloaded != 500 {
		t.Errorf("downloaded after progressMsg = %d, want 500", m.downloaded)
	}

	updated, _ = m.Update(progressDoneMsg{message: "Downloaded"})
	m = updated.(progressModel)
	if !m.done {
		t.Error("done after progressDoneMsg = false, want true")
	}
	if m.message != "Downloaded" {
		t.Errorf("message = %q, want Downloaded", m.message)
	}
}

func TestProgressModelView(t *testing.T) {
	t.Run("in progress shows sizes", func(t *testing.T) {
		model := initialProgressModel("", 2048)
		model.downloaded = 1024

		view := model.View()
		if !strings.Contains(view, "1.0 KiB") || !strings.Contains(view, "2.0 KiB") {
			t.Errorf("View() = %q, want downloaded/total sizes", view)
		}
		if !strings.Contains(view, "50%") {
			t.Errorf("View() = %q, want 50%%", view)
		}
	})

	t.Run("done shows message", func(t *testing.T) {
		model := progressModel{done: true, message: "Complete"}
		if got := model.View(); got != "Complete\n" {
			t.Errorf("View() = %q, want Complete\\n", got)
		}
	})

	t.Run("done without message clears line", func(t *testing.T) {
		model := progressModel{done: true}
		if got := model.View(); got != "\r\033[K" {
			t.Errorf("View() = %q, want clear sequence", got)
		}
	})
}

func TestProgressBarBeforeStart(t *testing.T) {
	bar := NewProgressBar()

	// None of these may panic before Start.
	bar.Update(500)
	bar.Finish("done")
	bar.Stop()
}
