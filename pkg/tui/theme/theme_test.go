package theme

import "testing"

func TestSleepColorGradient(t *testing.T) {
	th := Default()
	if got := th.SleepColor(0); string(got) != "#d9534f" {
		t.Fatalf("SleepColor(0) = %s", got)
	}
	if got := th.SleepColor(8); string(got) != "#5cb85c" {
		t.Fatalf("SleepColor(8) = %s", got)
	}
	if th.SleepColor(12) != th.SleepColor(8) {
		t.Fatalf("hours above eight should stay green")
	}
	mid := th.SleepColor(4)
	if mid == th.SleepColor(0) || mid == th.SleepColor(8) {
		t.Fatalf("SleepColor(4) = %s did not blend", mid)
	}
}
