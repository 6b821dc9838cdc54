package logger

import "testing"

func TestLevel_String(t *testing.T) {
	cases := map[Level]string{
		NoneLevel:    "none",
		ErrorLevel:   "error",
		WarningLevel: "warning",
		DebugLevel:   "debug",
		SpecialLevel: "special",
		Level(9):     "level(9)",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", uint(level), got, want)
		}
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(NoneLevel < ErrorLevel && ErrorLevel < WarningLevel && WarningLevel < DebugLevel && DebugLevel < SpecialLevel && SpecialLevel < levelGuard) {
		t.Fatal("levels must be ordered none < error < warning < debug < special < guard")
	}
}

func TestLevel_LabelsHaveEqualWidth(t *testing.T) {
	for _, level := range AllLevels() {
		if got := len(level.label()); got != len("[warning]") {
			t.Errorf("label %q has width %d", level.label(), got)
		}
	}
	if NoneLevel.label() != "" || levelGuard.label() != "" {
		t.Error("none and the sentinel must not have labels")
	}
}

func TestParseThreshold(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "0", want: NoneLevel},
		{in: "1", want: ErrorLevel},
		{in: "2", want: WarningLevel},
		{in: "3", want: DebugLevel},
		{in: "4", want: SpecialLevel},
		{in: "17", want: Level(17)},
		{in: "  2\n", want: WarningLevel},
		{in: "", want: DefaultThreshold, wantErr: true},
		{in: "debug", want: DefaultThreshold, wantErr: true},
		{in: "-1", want: DefaultThreshold, wantErr: true},
		{in: "3x", want: DefaultThreshold, wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseThreshold(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseThreshold(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseThreshold(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
