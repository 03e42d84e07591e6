package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"diceroller/internal/dice"
	"diceroller/internal/session/mocks"
)

func TestHandleToggle_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[dice.Board](ctrl)
	store.EXPECT().
		Update(gomock.Any(), testSession, gomock.Any()).
		Return(dice.Board{}, errors.New("store down"))

	srv, _ := testServer(t)
	srv.Store = store
	rec := do(t, srv, http.MethodPost, "/dice/d6/toggle", "")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "store down") {
		t.Error("Expected internal error text not to leak to the client")
	}
}

func TestHandleIndex_IssuesIDFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[dice.Board](ctrl)
	store.EXPECT().NewID().Return("fresh-id")
	store.EXPECT().
		Update(gomock.Any(), "fresh-id", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(dice.Board, bool) (dice.Board, error)) (dice.Board, error) {
			return fn(dice.Board{}, false)
		})

	srv, _ := testServer(t)
	srv.Store = store
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName || cookies[0].Value != "fresh-id" {
		t.Errorf("Expected cookie %s=fresh-id, got %v", cookieName, cookies)
	}
	if !strings.Contains(rec.Body.String(), "D20") {
		t.Error("Expected a fresh board rendered")
	}
}

func TestCommitRoll_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore[dice.Board](ctrl)
	store.EXPECT().
		Update(gomock.Any(), "sid", gomock.Any()).
		Return(dice.Board{}, context.DeadlineExceeded)

	srv, _ := testServer(t)
	srv.Store = store
	// logs and returns; nothing to render
	srv.commitRoll("sid")
}
