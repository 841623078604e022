package footage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const samplePayload = `{
  "videos": [
    {
      "id": 1093662,
      "url": "https://www.pexels.com/video/1093662/",
      "image": "https://images.pexels.com/videos/1093662/preview.jpg",
      "duration": 15,
      "width": 1920,
      "height": 1080,
      "user": {"name": "Jane Doe", "url": "https://www.pexels.com/@jane"},
      "video_files": [
        {"link": "https://player.vimeo.com/sd.mp4", "quality": "sd", "width": 640, "height": 360},
        {"link": "https://player.vimeo.com/hd.mp4", "quality": "hd", "width": 1920, "height": 1080}
      ]
    },
    {
      "id": 42,
      "url": "https://www.pexels.com/video/42/",
      "image": "https://images.pexels.com/videos/42/preview.jpg",
      "duration": 8,
      "width": 1280,
      "height": 720,
      "user": {"name": "John Roe", "url": "https://www.pexels.com/@john"},
      "video_files": []
    }
  ]
}`

func TestSearchVideos(t *testing.T) {
	var gotAuth, gotQuery, gotPerPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotPerPage = r.URL.Query().Get("per_page")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c, err := NewClient("test-key")
	if err != nil {
		t.Fatal(err)
	}
	c.baseURL = srv.URL

	clips, err := c.SearchVideos(context.Background(), "city skyline at night", 3)
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}

	if gotAuth != "test-key" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
	if gotQuery != "city skyline at night" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotPerPage != "3" {
		t.Errorf("per_page = %q", gotPerPage)
	}
	if len(clips) != 2 {
		t.Fatalf("got %d clips, want 2", len(clips))
	}

	// HD rendition preferred.
	if clips[0].URL != "https://player.vimeo.com/hd.mp4" {
		t.Errorf("clip 0 url = %q", clips[0].URL)
	}
	if clips[0].Attribution != "Jane Doe" || clips[0].DurationSec != 15 {
		t.Errorf("clip 0 = %+v", clips[0])
	}

	// No files: fall back to the video page URL.
	if clips[1].URL != "https://www.pexels.com/video/42/" {
		t.Errorf("clip 1 url = %q", clips[1].URL)
	}
}

func TestSearchVideosErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient("test-key")
	if err != nil {
		t.Fatal(err)
	}
	c.baseURL = srv.URL

	if _, err := c.SearchVideos(context.Background(), "anything", 3); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestSearchVideosEmptyQuery(t *testing.T) {
	c, err := NewClient("test-key")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.SearchVideos(context.Background(), "", 3); err == nil {
		t.Fatal("expected error for empty query")
	}
}
