package langdetect

import (
	"testing"

	"github.com/pemistahl/lingua-go"
)

func TestResolveLanguage(t *testing.T) {
	d := New(lingua.English, lingua.Spanish, lingua.German)

	tests := []struct {
		name string
		text string
		lang string
		want string
	}{
		{
			name: "known language passes through",
			text: "this text is clearly english but tagged otherwise",
			lang: "es",
			want: "es",
		},
		{
			name: "undetermined english",
			text: "the hospital staff are working around the clock to help everyone",
			lang: Undetermined,
			want: "en",
		},
		{
			name: "undetermined spanish",
			text: "los médicos y las enfermeras del hospital trabajan todo el día",
			lang: Undetermined,
			want: "es",
		},
		{
			name: "undetermined without letters",
			text: "1234 5678",
			lang: Undetermined,
			want: Undetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.ResolveLanguage(tt.text, tt.lang); got != tt.want {
				t.Errorf("ResolveLanguage(%q, %q) = %q, want %q", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}
