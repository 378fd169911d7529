package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func runRank(apiURL, mood, city string, out io.Writer) error {
	if mood == "" || city == "" {
		return fmt.Errorf("mood and city are required")
	}
	payload := map[string]string{"mood": mood, "city": city}
	body, _ := json.Marshal(payload)
	resp, err := http.Post(apiURL+"/api/rank", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	_, err = io.Copy(out, resp.Body)
	return err
}

func runTranslate(apiURL, phrase string, out io.Writer) error {
	if phrase == "" {
		return fmt.Errorf("phrase cannot be empty")
	}
	resp, err := http.Get(apiURL + "/api/translate?phrase=" + url.QueryEscape(phrase))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	_, err = io.Copy(out, resp.Body)
	return err
}

func runHealth(apiURL string, out io.Writer) error {
	resp, err := http.Get(apiURL + "/v0/health")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, err = io.Copy(out, resp.Body)
	return err
}
