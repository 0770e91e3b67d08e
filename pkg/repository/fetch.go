package repository

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// Fetch downloads url into file.
// The download is written to <file>.new first. Only when it is complete, the current file is
// moved to <file>.save and the new one takes its place. On error the current file stays untouched.
func Fetch(ctx context.Context, client *http.Client, url, file string) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("could not fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("could not fetch %s: %s", url, resp.Status)
	}

	newFile := file + ".new"
	if err := writeFile(newFile, resp.Body); err != nil {
		os.Remove(newFile)
		return err
	}

	saveFile := file + ".save"
	if _, err := os.Stat(file); err == nil {
		if err := os.Rename(file, saveFile); err != nil {
			os.Remove(newFile)
			return err
		}
	}
	if err := os.Rename(newFile, file); err != nil {
		return err
	}
	log.Printf("Fetched %s into %s\n", url, file)
	return nil
}

func writeFile(filename string, r io.Reader) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Refresh fetches every file of the data set for which an url is given.
// Errors are logged and the local copies are kept.
func Refresh(ctx context.Context, client *http.Client, dir string, files Files, urls Files) {
	pairs := [][2]string{{urls.Nodes, files.Nodes}, {urls.Trails, files.Trails}, {urls.Closed, files.Closed}}
	for _, pair := range pairs {
		url, file := pair[0], pair[1]
		if url == "" || file == "" {
			continue
		}
		if err := Fetch(ctx, client, url, filepath.Join(dir, file)); err != nil {
			log.Printf("WARN: %v, keeping the local copy\n", err)
		}
	}
}
