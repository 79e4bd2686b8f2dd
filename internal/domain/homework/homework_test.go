package homework

import "testing"

func TestStatusMessageKnownStatuses(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{
			status: StatusApproved,
			want:   `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			status: StatusReviewing,
			want:   `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`,
		},
		{
			status: StatusRejected,
			want:   `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`,
		},
	}

	for _, tc := range cases {
		msg, known := StatusMessage(Homework{Name: "hw1", Status: tc.status})
		if !known {
			t.Errorf("status %q: expected known=true", tc.status)
		}
		if msg != tc.want {
			t.Errorf("status %q:\ngot  %s\nwant %s", tc.status, msg, tc.want)
		}
	}
}

func TestStatusMessageUnknownStatusFallsBack(t *testing.T) {
	msg, known := StatusMessage(Homework{Name: "hw2", Status: "resubmitted"})
	if known {
		t.Error("expected known=false for an undocumented status")
	}
	want := `Изменился статус проверки работы "hw2". resubmitted`
	if msg != want {
		t.Errorf("got %s, want %s", msg, want)
	}
}

func TestVerdict(t *testing.T) {
	if _, ok := Verdict(StatusApproved); !ok {
		t.Error("approved must be in the catalog")
	}
	if v, ok := Verdict("whatever"); ok || v != "" {
		t.Errorf("unexpected catalog hit for unknown status: %q", v)
	}
}
