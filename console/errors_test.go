package console

import (
	"errors"
	"fmt"
	"testing"

	"permit-service-api/client"
)

func TestUserMessageKeepsApplicationDetail(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", &ValidationError{Message: "Balasan email tidak boleh kosong"}, "Balasan email tidak boleh kosong"},
		{"application", &client.APIError{StatusCode: 409, Message: "perubahan status tidak diizinkan"}, "perubahan status tidak diizinkan"},
		{"connectivity", fmt.Errorf("%w: dial tcp 127.0.0.1:9999: connection refused", client.ErrConnectivity), ConnectivityMessage},
		{"other", errors.New("unexpected"), "unexpected"},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.err); got != tc.want {
			t.Errorf("%s: UserMessage = %q, want %q", tc.name, got, tc.want)
		}
	}
}
