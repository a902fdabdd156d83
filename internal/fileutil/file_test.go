package fileutil

import "testing"

func TestEnsureExtension(t *testing.T) {
	type args struct {
		name string
		ext  string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "拡張子がなければ付け足す",
			args: args{name: "desktop_audio", ext: ".mp3"},
			want: "desktop_audio.mp3",
		},
		{
			name: "すでに付いていれば何もしない",
			args: args{name: "desktop_audio.mp3", ext: ".mp3"},
			want: "desktop_audio.mp3",
		},
		{
			name: "大文字の拡張子も付いているとみなす",
			args: args{name: "desktop_audio.MP3", ext: ".mp3"},
			want: "desktop_audio.MP3",
		},
		{
			name: "途中に .mp3 を含むだけなら付け足す",
			args: args{name: "mp3_capture", ext: ".mp3"},
			want: "mp3_capture.mp3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureExtension(tt.args.name, tt.args.ext); got != tt.want {
				t.Errorf("EnsureExtension() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeReplaceName(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "シェルで面倒な文字は _ に置換する",
			arg:  "my recording!?.mp3",
			want: "my_recording__.mp3",
		},
		{
			name: "パス区切りはそのまま残す",
			arg:  "archive/today.mp3",
			want: "archive/today.mp3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeReplaceName(tt.arg); got != tt.want {
				t.Errorf("SanitizeReplaceName() = %v, want %v", got, tt.want)
			}
		})
	}
}
