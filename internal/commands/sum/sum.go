package sum

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unkn0wn-root/sha1-go/errors"
	"github.com/unkn0wn-root/sha1-go/objectid"
	"github.com/unkn0wn-root/sha1-go/sha1"
)

// Result is one digested input.
type Result struct {
	Name   string
	Digest string
}

// String renders the result as a checksum-file line, sha1sum style.
func (r Result) String() string {
	return fmt.Sprintf("%s  %s", r.Digest, r.Name)
}

// Reader streams r into a fresh engine. Memory use stays constant no matter
// how large the input is.
func Reader(r io.Reader, name string) (Result, error) {
	d := sha1.New()
	if _, err := io.Copy(d, r); err != nil {
		return Result{}, errors.NewToolError("sum", name, err)
	}
	return Result{Name: name, Digest: d.Hexdigest()}, nil
}

// File digests the contents of the file at path.
func File(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, errors.NewToolError("sum", path, err)
	}
	if info.IsDir() {
		return Result{}, errors.NewToolError("sum", path, errors.ErrIsDirectory)
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.NewToolError("sum", path, err)
	}
	defer f.Close()

	return Reader(f, path)
}

// CheckResult is the verification outcome for one checksum-file entry.
type CheckResult struct {
	Path string
	OK   bool
	Err  error
}

// Check re-digests every file named in the checksum file at path and
// compares against the recorded digests. Parse errors abort; per-file
// failures are reported in the results.
func Check(path string) ([]CheckResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewToolError("check", path, err)
	}
	defer f.Close()

	return checkLines(f, path)
}

func checkLines(r io.Reader, name string) ([]CheckResult, error) {
	var results []CheckResult

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		want, target, ok := parseLine(line)
		if !ok {
			return nil, errors.NewToolError("check", fmt.Sprintf("%s:%d", name, lineNo), errors.ErrMalformedSumLine)
		}

		res, err := File(target)
		switch {
		case err != nil:
			results = append(results, CheckResult{Path: target, Err: err})
		case res.Digest != want:
			results = append(results, CheckResult{Path: target, Err: errors.ErrChecksumMismatch})
		default:
			results = append(results, CheckResult{Path: target, OK: true})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewToolError("check", name, err)
	}
	if len(results) == 0 {
		return nil, errors.NewToolError("check", name, errors.ErrEmptySumFile)
	}

	return results, nil
}

// parseLine accepts the sha1sum line form "<digest>  <path>", tolerating
// the "*" binary-mode marker and uppercase digests.
func parseLine(line string) (digest, path string, ok bool) {
	if len(line) < 43 {
		return "", "", false
	}

	digest = strings.ToLower(line[:40])
	if !objectid.Validate(digest) {
		return "", "", false
	}
	if line[40] != ' ' || (line[41] != ' ' && line[41] != '*') {
		return "", "", false
	}

	path = line[42:]
	return digest, path, true
}
