package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic log content and must match expected results.
const (
	requestsPerIP    = 10
	serverErrorsByIP = 8 // 10.0.0.4 answers 500 this many times, above the default anomaly threshold of 5
	notFoundByIP     = 2 // 10.0.0.3 hits this many missing pages
)

var ips = []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}

// ### End - fixed configs

type expected struct {
	totalRequests int
	errorRequests int
	errorRate     float64
	uniqueIPs     int
	anomalies     int
	serverErrors  int
}

type fileDescriptor struct {
	FileHash string `json:"file_hash"`
	FileName string `json:"file_name"`
}

type snapshot struct {
	TotalRequests int     `json:"totalRequests"`
	ErrorRequests int     `json:"errorRequests"`
	ErrorRate     float64 `json:"errorRate"`
	UniqueIPs     int     `json:"uniqueIPs"`
	Anomalies     int     `json:"anomalies"`
}

// main runs the e2e scenario: 001_upload_and_dashboard
//
// The scenario drives a running log-dashboard gateway, itself wired to a running log backend, through
// the whole user flow of one account.
//
// What it tests:
//   - Registration via POST /register and sign in via POST /login (session cookie)
//   - Upload of a generated access log via POST /api/uploads
//   - File listing via GET /api/files
//   - Metric cards via GET /api/files/{fileHash}/dashboard
//   - Raw log filtering via GET /api/files/{fileHash}/logs?status=5xx
//   - The download and delete file actions
//   - Sign out via POST /logout and the auth gate redirect afterwards
//
// Expected results:
//   - 40 requests from 4 IPs, 10 of them errors (25.0%)
//   - One anomalous IP (10.0.0.4 with 8 server errors)
//   - 8 rows in the 5xx filter and 40 entries in the download
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the log-dashboard gateway
	dateUTC := "2025-12-28"            // Date used for generating log entry timestamps (UTC)
	password := "scenario-password"    // Password of the generated account

	if v := os.Getenv("GATEWAY_URL"); v != "" {
		baseURL = strings.TrimRight(v, "/")
	}

	// every run registers a fresh account and uploads a fresh file, the backend dedupes files by hash
	nonce := time.Now().UTC().Format("20060102150405.000000000")
	nonce = strings.ReplaceAll(nonce, ".", "")
	username := "scenario" + nonce
	email := username + "@example.com"

	fmt.Println("Starting e2e scenario: 001_upload_and_dashboard")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("EMAIL: %s\n", email)
	fmt.Println()

	jar, err := cookiejar.New(nil)
	must(err, "create cookie jar")
	client := &http.Client{
		Jar:     jar,
		Timeout: 60 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	content, want := generateLog(dateUTC, nonce)

	// 1) Register
	registerBody, _ := json.Marshal(map[string]string{"username": username, "email": email, "password": password})
	resp := do(client, http.MethodPost, baseURL+"/register", "application/json", bytes.NewReader(registerBody))
	expectStatus(resp, http.StatusCreated, "register")

	// 2) Login
	form := url.Values{"email": {email}, "password": {password}}
	resp = do(client, http.MethodPost, baseURL+"/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	expectStatus(resp, http.StatusOK, "login")

	// 3) Upload
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "access.log")
	must(err, "create multipart part")
	_, err = part.Write(content)
	must(err, "write multipart part")
	must(writer.Close(), "close multipart writer")

	resp = do(client, http.MethodPost, baseURL+"/api/uploads", writer.FormDataContentType(), &body)
	var uploaded struct {
		File fileDescriptor `json:"file"`
	}
	decode(resp, http.StatusCreated, "upload", &uploaded)
	fileHash := uploaded.File.FileHash
	fmt.Printf("Uploaded access.log as %s\n", fileHash)

	// 4) Files
	resp = do(client, http.MethodGet, baseURL+"/api/files", "", nil)
	var files struct {
		Files []fileDescriptor `json:"files"`
	}
	decode(resp, http.StatusOK, "list files", &files)
	check(len(files.Files) == 1 && files.Files[0].FileHash == fileHash, "files list holds only the upload, got %+v", files.Files)

	// 5) Dashboard
	resp = do(client, http.MethodGet, baseURL+"/api/files/"+fileHash+"/dashboard", "", nil)
	var dashboard struct {
		Snapshot snapshot `json:"snapshot"`
		Stale    bool     `json:"stale"`
	}
	decode(resp, http.StatusOK, "dashboard", &dashboard)
	got := dashboard.Snapshot
	check(!dashboard.Stale, "dashboard is fresh")
	check(got.TotalRequests == want.totalRequests, "total requests %d, want %d", got.TotalRequests, want.totalRequests)
	check(got.ErrorRequests == want.errorRequests, "error requests %d, want %d", got.ErrorRequests, want.errorRequests)
	check(got.ErrorRate == want.errorRate, "error rate %.1f, want %.1f", got.ErrorRate, want.errorRate)
	check(got.UniqueIPs == want.uniqueIPs, "unique ips %d, want %d", got.UniqueIPs, want.uniqueIPs)
	check(got.Anomalies == want.anomalies, "anomalies %d, want %d", got.Anomalies, want.anomalies)

	// 6) Raw logs filtered on server errors
	resp = do(client, http.MethodGet, baseURL+"/api/files/"+fileHash+"/logs?status=5xx", "", nil)
	var page struct {
		Total int `json:"total"`
	}
	decode(resp, http.StatusOK, "logs", &page)
	check(page.Total == want.serverErrors, "5xx rows %d, want %d", page.Total, want.serverErrors)

	// 7) Download
	resp = do(client, http.MethodPost, baseURL+"/api/files/"+fileHash+"/actions/download", "", nil)
	var downloaded []json.RawMessage
	decode(resp, http.StatusOK, "download", &downloaded)
	check(len(downloaded) == want.totalRequests, "downloaded %d entries, want %d", len(downloaded), want.totalRequests)

	// 8) Delete
	resp = do(client, http.MethodPost, baseURL+"/api/files/"+fileHash+"/actions/delete", "", nil)
	expectStatus(resp, http.StatusOK, "delete")

	// 9) Logout, then the gate must redirect
	resp = do(client, http.MethodPost, baseURL+"/logout", "", nil)
	expectStatus(resp, http.StatusNoContent, "logout")
	resp = do(client, http.MethodGet, baseURL+"/api/files", "", nil)
	expectStatus(resp, http.StatusFound, "files after logout")

	fmt.Println()
	fmt.Println("Scenario passed")
}

// generateLog builds a combined-format access log and the metrics it must produce.
func generateLog(dateUTC, nonce string) ([]byte, expected) {
	day, err := time.Parse("2006-01-02", dateUTC)
	must(err, "parse DATE_UTC")

	var buf bytes.Buffer
	want := expected{uniqueIPs: len(ips), anomalies: 1}
	for i, ip := range ips {
		for n := 0; n < requestsPerIP; n++ {
			ts := day.Add(time.Duration(i)*time.Hour + time.Duration(n)*time.Minute)
			status, path := 200, fmt.Sprintf("/page/%d?run=%s", n, nonce)
			switch {
			case ip == "10.0.0.4" && n < serverErrorsByIP:
				status, path = 500, "/api/checkout"
				want.serverErrors++
			case ip == "10.0.0.3" && n < notFoundByIP:
				status, path = 404, "/wp-login.php"
			}
			if status >= 400 {
				want.errorRequests++
			}
			want.totalRequests++
			fmt.Fprintf(&buf, "%s - - [%s] \"GET %s HTTP/1.1\" %d 512 \"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0\"\n",
				ip, ts.Format("02/Jan/2006:15:04:05 -0700"), path, status)
		}
	}
	want.errorRate = float64(want.errorRequests*1000/want.totalRequests) / 10
	return buf.Bytes(), want
}

func do(client *http.Client, method, target, contentType string, body io.Reader) *http.Response {
	req, err := http.NewRequest(method, target, body)
	must(err, "build request "+target)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := client.Do(req)
	must(err, method+" "+target)
	return resp
}

func expectStatus(resp *http.Response, status int, step string) {
	defer resp.Body.Close()
	if resp.StatusCode != status {
		payload, _ := io.ReadAll(resp.Body)
		fail("%s: status %d, want %d: %s", step, resp.StatusCode, status, payload)
	}
	fmt.Printf("OK %s (%d)\n", step, status)
}

func decode(resp *http.Response, status int, step string, out any) {
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	must(err, step+": read body")
	if resp.StatusCode != status {
		fail("%s: status %d, want %d: %s", step, resp.StatusCode, status, payload)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		fail("%s: decode body: %v", step, err)
	}
	fmt.Printf("OK %s (%d)\n", step, status)
}

func check(ok bool, format string, args ...any) {
	if !ok {
		fail("CHECK FAILED: "+format, args...)
	}
}

func must(err error, what string) {
	if err != nil {
		fail("%s: %v", what, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
