package trace

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Recorder writes chrome-trace events so frame timing can be inspected
// in a trace viewer. A nil Recorder is valid and records nothing, so
// call sites stay unconditional.
type Recorder struct {
	file *os.File
	lock sync.Mutex
}

func NewRecorder(path string) (*Recorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	file.WriteString("{\"traceEvents\": [")
	ts := time.Now().UnixMicro()
	file.WriteString(
		`{ "name": "process_name",` +
			`"ph": "M",` +
			`"ts":` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "cat": "__metadata",` +
			`"args": {"name": "GraphWin"}}`)
	file.Sync()
	return &Recorder{file: file}, nil
}

func (r *Recorder) Begin(name string) {
	if r == nil {
		return
	}
	r.lock.Lock()
	ts := time.Now().UnixMicro()
	r.file.WriteString(
		`, { "ph": "B", "cat": "_",` +
			`"name": "` + name + `",` +
			`"ts": ` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "tid": 1}`)
	r.lock.Unlock()
}

func (r *Recorder) End(name string) {
	if r == nil {
		return
	}
	r.lock.Lock()
	ts := time.Now().UnixMicro()
	r.file.WriteString(
		`, { "ph": "E", "cat": "_",` +
			`"name": "` + name + `",` +
			`"ts": ` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "tid": 1}`)
	r.lock.Unlock()
}

func (r *Recorder) Finish() {
	if r == nil {
		return
	}
	r.lock.Lock()
	r.file.WriteString("]}")
	r.file.Close()
	r.lock.Unlock()
}
