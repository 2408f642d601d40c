package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lmsweb/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 5*time.Second), server
}

func TestLoginNormalizesTokenKey(t *testing.T) {
	for _, key := range []string{"token", "sessionCookie"} {
		t.Run(key, func(t *testing.T) {
			client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/auth/login", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]interface{}{
					key:    "tok-123",
					"user": map[string]string{"_id": "u1", "name": "Ada", "role": "student"},
				})
			}))
			defer server.Close()

			session, err := client.Login(context.Background(), "ada@example.com", "secret")
			require.NoError(t, err)
			assert.Equal(t, "tok-123", session.Token)
			assert.Equal(t, "u1", session.User.ID)
		})
	}
}

func TestLoginMissingTokenIsLoudError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": map[string]string{"_id": "u1"},
		})
	}))
	defer server.Close()

	_, err := client.Login(context.Background(), "ada@example.com", "secret")
	assert.Error(t, err)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	_, err := client.Login(context.Background(), "ada@example.com", "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestListModulesSendsQueryAndDecodesEnvelope(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/modules", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "go", query.Get("search"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "30", query.Get("limit"))
		assert.Equal(t, "desc", query.Get("sortOrder"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		w.Write([]byte(`{"data":{"modules":[{"_id":"m1","title":"Go"}],"pagination":{"page":2,"pages":5}}}`))
	}))
	defer server.Close()

	q := listing.Query{Search: "go", Page: 2, Sort: listing.SortDesc}
	modules, pagination, err := client.ListModules(context.Background(), "tok-1", q, 30)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "m1", modules[0].ID)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 5, pagination.Pages)
}

func TestListModulesRejectsUnexpectedShape(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"modules":[]}`))
	}))
	defer server.Close()

	_, _, err := client.ListModules(context.Background(), "tok-1", listing.New(), 30)
	assert.Error(t, err, "a response without data.modules must fail loudly, not decode to empty")
}

func TestGetModuleRejectsMissingModule(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	_, err := client.GetModule(context.Background(), "tok-1", "m1")
	assert.Error(t, err)
}

func TestMyEnrollmentsAcceptsWrappedOrBareArray(t *testing.T) {
	bodies := map[string]string{
		"wrapped": `{"enrollments":[{"_id":"e1","module":{"_id":"m1","title":"Go"}}]}`,
		"bare":    `[{"_id":"e1","module":"m1"}]`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/enrollments/my-courses", r.URL.Path)
				w.Write([]byte(body))
			}))
			defer server.Close()

			enrollments, err := client.MyEnrollments(context.Background(), "tok-1")
			require.NoError(t, err)
			require.Len(t, enrollments, 1)
			assert.Equal(t, "m1", enrollments[0].ModuleID())
		})
	}
}

func TestCheckEnrollment(t *testing.T) {
	t.Run("member", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"enrollments":[{"_id":"e1","module":"m1"},{"_id":"e2","module":{"_id":"m2"}}]}`))
		}))
		defer server.Close()

		assert.True(t, client.CheckEnrollment(context.Background(), "tok-1", "m2"))
		assert.False(t, client.CheckEnrollment(context.Background(), "tok-1", "m9"))
	})

	t.Run("failure degrades to not enrolled", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
		}))
		defer server.Close()

		assert.False(t, client.CheckEnrollment(context.Background(), "tok-1", "m1"))
	})
}

func TestCreateContentPayloadPerKind(t *testing.T) {
	type received struct {
		kind  string
		form  map[string]string
		files []string
	}
	var got received

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/modules/m1/content", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		got = received{kind: r.URL.Query().Get("type"), form: map[string]string{}}
		for key, values := range r.MultipartForm.Value {
			got.form[key] = values[0]
		}
		for field := range r.MultipartForm.File {
			got.files = append(got.files, field)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":true}`))
	})

	t.Run("video", func(t *testing.T) {
		client, server := newTestClient(handler)
		defer server.Close()

		err := client.CreateContent(context.Background(), "tok-1", "m1", "video", ContentSubmission{
			Title:       "Intro",
			IsFree:      true,
			Description: "First lesson",
			FileName:    "intro.mp4",
			File:        strings.NewReader("fake video"),
		})
		require.NoError(t, err)
		assert.Equal(t, "video", got.kind)
		assert.Equal(t, "Intro", got.form["title"])
		assert.Equal(t, "true", got.form["isFree"])
		assert.Equal(t, "First lesson", got.form["description"])
		assert.Equal(t, []string{"video"}, got.files)
	})

	t.Run("assignment", func(t *testing.T) {
		client, server := newTestClient(handler)
		defer server.Close()

		err := client.CreateContent(context.Background(), "tok-1", "m1", "assignment", ContentSubmission{
			Title:       "Homework",
			Instruction: "Solve all exercises",
			MaxScore:    50,
			FileName:    "hw.pdf",
			File:        strings.NewReader("fake pdf"),
		})
		require.NoError(t, err)
		assert.Equal(t, "assignment", got.kind)
		assert.Equal(t, "Solve all exercises", got.form["instruction"])
		assert.Equal(t, "50", got.form["maxScore"])
		assert.Equal(t, []string{"assignment"}, got.files)
	})

	t.Run("quiz sends no file", func(t *testing.T) {
		client, server := newTestClient(handler)
		defer server.Close()

		err := client.CreateContent(context.Background(), "tok-1", "m1", "quiz", ContentSubmission{
			Title:   "Checkpoint",
			QuizUrl: "https://forms.gle/abc123",
		})
		require.NoError(t, err)
		assert.Equal(t, "quiz", got.kind)
		assert.Equal(t, "https://forms.gle/abc123", got.form["quizUrl"])
		assert.Empty(t, got.files)
	})
}
