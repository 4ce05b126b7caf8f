package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"robomart/internal/domain"
	"robomart/internal/remote"
)

func draft() domain.Draft {
	return domain.Draft{
		Name:        "Arm X",
		Description: "6-axis industrial arm",
		Price:       1000,
		Stock:       3,
		Category:    "Robotic Arms",
		Features:    []string{"6-axis movement", "High precision"},
	}
}

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "p1", "name": "Arm X", "price": 1000, "stock": 3, "category": "Robotic Arms"},
				{"_id": "p2", "name": "Drone Y", "price": 500, "stock": 5, "category": "Drones"},
			},
		})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL + "/api")
	products, err := c.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 || products[0].ID != "p1" || products[1].Name != "Drone Y" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestClientCreateMultipartShape(t *testing.T) {
	var gotForm map[string]string
	var gotFiles []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("body is not multipart: %v", err)
		}
		gotForm = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotForm[k] = v[0]
		}
		for _, fh := range r.MultipartForm.File["images"] {
			gotFiles = append(gotFiles, fh.Filename)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "p9", "name": "Arm X"},
		})
	}))
	defer srv.Close()

	d := draft()
	d.Attachments = []domain.Attachment{
		{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpegdata")},
		{Filename: "side.png", ContentType: "image/png", Data: []byte("pngdata")},
	}

	c := remote.NewClient(srv.URL + "/api")
	p, err := c.Create(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != "p9" {
		t.Fatalf("want backend-assigned id p9, got %+v", p)
	}

	want := map[string]string{
		"name":           "Arm X",
		"description":    "6-axis industrial arm",
		"price":          "1000",
		"category":       "Robotic Arms",
		"stock":          "3",
		"features":       "6-axis movement, High precision",
		"specifications": "{}",
	}
	for k, v := range want {
		if gotForm[k] != v {
			t.Errorf("field %s = %q, want %q", k, gotForm[k], v)
		}
	}
	if len(gotFiles) != 2 || gotFiles[0] != "front.jpg" || gotFiles[1] != "side.png" {
		t.Fatalf("image parts must preserve order, got %v", gotFiles)
	}
}

func TestClientCreateNoImagesStillMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("zero-image create must still be multipart: %v", err)
		}
		if got := r.MultipartForm.Value["name"]; len(got) == 0 || got[0] != "Arm X" {
			t.Errorf("text fields missing from multipart body: %v", r.MultipartForm.Value)
		}
		if len(r.MultipartForm.File["images"]) != 0 {
			t.Errorf("unexpected image parts")
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"_id": "p1"}})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL + "/api")
	if _, err := c.Create(context.Background(), draft()); err != nil {
		t.Fatal(err)
	}
}

func TestClientUpdateAddressesProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/products/p1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("update must be multipart: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "p1", "name": r.FormValue("name")},
		})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL + "/api")
	d := draft()
	d.Name = "Arm X rev2"
	p, err := c.Update(context.Background(), "p1", d)
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != "p1" || p.Name != "Arm X rev2" {
		t.Fatalf("want the backend's updated copy, got %+v", p)
	}
}

func TestClientValidationShortCircuits(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL + "/api")
	d := draft()
	d.Name = ""
	d.Price = -1
	_, err := c.Create(context.Background(), d)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 || verr.Fields[0] != "name" || verr.Fields[1] != "price" {
		t.Fatalf("want [name price], got %v", verr.Fields)
	}
	if calls != 0 {
		t.Fatal("invalid draft must be rejected before any network round trip")
	}
}

func TestClientRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Product not found"})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL + "/api")
	err := c.Remove(context.Background(), "missing-id")

	var rej *remote.RemoteError
	if !errors.As(err, &rej) {
		t.Fatalf("want RemoteError, got %v", err)
	}
	if rej.Message != "Product not found" {
		t.Fatalf("backend message must pass through verbatim, got %q", rej.Message)
	}
	if rej.Status != http.StatusNotFound {
		t.Fatalf("want status 404, got %d", rej.Status)
	}
}

func TestClientSuccessFalseIsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "validation failed upstream"})
	}))
	defer srv.Close()

	c := remote.NewClient(srv.URL + "/api")
	_, err := c.List(context.Background())

	var rej *remote.RemoteError
	if !errors.As(err, &rej) {
		t.Fatalf("want RemoteError on success:false, got %v", err)
	}
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := remote.NewClient(srv.URL + "/api")
	_, err := c.List(context.Background())

	var nerr *remote.NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("want NetworkError, got %v", err)
	}
}
