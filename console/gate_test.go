package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"permit-service-api/client"
)

func profileBackend(t *testing.T, status int, success bool, message string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/profile" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": success,
			"message": message,
			"data": client.AdminData{
				ID:       "a-1",
				Username: "petugas",
				Role:     "super_admin",
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func gateController(serverURL string, session *client.Session) *Controller {
	return NewController(client.New(serverURL+"/api/v1", session))
}

func TestVerifySessionWithoutTokenRequiresLogin(t *testing.T) {
	server := profileBackend(t, http.StatusOK, true, "")
	controller := gateController(server.URL, client.NewSession())

	outcome, err := controller.VerifySession(context.Background())
	if err != nil {
		t.Fatalf("no-token check must not error: %v", err)
	}
	if outcome != GateLoginRequired {
		t.Fatalf("expected login required, got %d", outcome)
	}
}

func TestVerifySessionRefreshesIdentityOnAcceptance(t *testing.T) {
	server := profileBackend(t, http.StatusOK, true, "")
	session := client.NewSession()
	session.Begin("token-abc", client.Identity{ID: "a-1", Username: "petugas", Role: "admin"})
	controller := gateController(server.URL, session)

	outcome, err := controller.VerifySession(context.Background())
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if outcome != GateAuthenticated {
		t.Fatalf("expected authenticated, got %d", outcome)
	}
	identity := session.Identity()
	if identity == nil || identity.Role != "super_admin" {
		t.Fatalf("identity must be refreshed from the server response: %+v", identity)
	}
	if session.Token() != "token-abc" {
		t.Fatalf("token must survive a successful verification")
	}
}

func TestVerifySessionClearsOnExplicitRejection(t *testing.T) {
	server := profileBackend(t, http.StatusUnauthorized, false, "Token tidak valid")
	session := client.NewSession()
	session.Begin("expired-token", client.Identity{ID: "a-1", Username: "petugas"})
	controller := gateController(server.URL, session)

	outcome, err := controller.VerifySession(context.Background())
	if outcome != GateLoginRequired {
		t.Fatalf("rejected token must force re-login, got %d", outcome)
	}
	if err == nil {
		t.Fatalf("the rejection must be reported")
	}
	if session.Authenticated() || session.Identity() != nil {
		t.Fatalf("session must be cleared on rejection")
	}
}

func TestVerifySessionToleratesConnectivityFailure(t *testing.T) {
	server := profileBackend(t, http.StatusOK, true, "")
	session := client.NewSession()
	session.Begin("token-abc", client.Identity{ID: "a-1", Username: "petugas", Role: "admin"})
	controller := gateController(server.URL, session)
	server.Close()

	outcome, err := controller.VerifySession(context.Background())
	if err != nil {
		t.Fatalf("lenient mode must swallow the connectivity error: %v", err)
	}
	if outcome != GateOffline {
		t.Fatalf("expected offline tolerance, got %d", outcome)
	}
	if !session.Authenticated() {
		t.Fatalf("cached session must survive the outage")
	}
}

func TestVerifySessionStrictModeForcesReloginOnConnectivityFailure(t *testing.T) {
	server := profileBackend(t, http.StatusOK, true, "")
	session := client.NewSession()
	session.Begin("token-abc", client.Identity{ID: "a-1", Username: "petugas", Role: "admin"})
	controller := gateController(server.URL, session)
	controller.StrictVerify = true
	server.Close()

	outcome, err := controller.VerifySession(context.Background())
	if outcome != GateLoginRequired {
		t.Fatalf("strict mode must force re-login, got %d", outcome)
	}
	if err == nil {
		t.Fatalf("strict mode must report why verification failed")
	}
	if session.Authenticated() {
		t.Fatalf("strict mode must clear the session")
	}
}
