package debug

import "testing"

func TestTreeWriter(t *testing.T) {
	tests := []struct {
		name  string
		write func(tw *TreeWriter)
		want  string
	}{
		{
			name:  "empty",
			write: func(*TreeWriter) {},
			want:  "",
		},
		{
			name: "lines",
			write: func(tw *TreeWriter) {
				tw.Line(0, "rule %d", 1)
				tw.Line(2, "deep")
			},
			want: "rule 1\n    deep\n",
		},
		{
			name: "plain value",
			write: func(tw *TreeWriter) {
				tw.Value(1, "color", "rgba(255,0,0,255)")
			},
			want: "  color: rgba(255,0,0,255)\n",
		},
		{
			name: "quoted values",
			write: func(tw *TreeWriter) {
				tw.Value(0, "--a", " x")
				tw.Value(0, "--b", `say "hi"`)
				tw.Value(0, "--c", "")
			},
			want: "--a: \" x\"\n--b: \"say \\\"hi\\\"\"\n--c: \"\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tt.write(tw)
			if got := tw.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
