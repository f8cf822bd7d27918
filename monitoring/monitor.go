// Package monitoring exposes a small HTTP server for inspecting a
// running dcpt.Adapter from outside the process it is embedded in:
// per-set occupancy, host-process resource usage, and a CPU profile
// on demand.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable net/http/pprof's handlers on the default mux.
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/dcpt/internal/table"
)

// Monitor serves operational visibility for zero or more tables
// registered with RegisterTable, each labeled by the id its owning
// Adapter reports from Adapter.ID.
type Monitor struct {
	portNumber int
	tables     map[string]*table.Table
}

// NewMonitor creates an empty Monitor.
func NewMonitor() *Monitor {
	return &Monitor{tables: map[string]*table.Table{}}
}

// WithPortNumber sets the TCP port the monitor listens on. A value
// below 1000 is rejected in favor of an OS-assigned port, to avoid
// colliding with privileged ports.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"port %d is not allowed for the monitoring server, using a random port instead\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterTable makes t's occupancy visible under id at /stats.
func (m *Monitor) RegisterTable(id string, t *table.Table) {
	m.tables[id] = t
}

// StartServer starts the HTTP server in the background and returns
// the address it bound to.
func (m *Monitor) StartServer() (string, error) {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", m.healthz)
	r.HandleFunc("/stats", m.stats)
	r.HandleFunc("/resources", m.resources)
	r.HandleFunc("/profile", m.profile)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	actualPort := ":0"
	if m.portNumber >= 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	if err != nil {
		return "", fmt.Errorf("monitoring: listening: %w", err)
	}

	addr := listener.Addr().String()

	go func() {
		if err := http.Serve(listener, r); err != nil {
			log.Println("monitoring: server stopped:", err)
		}
	}()

	return addr, nil
}

func (m *Monitor) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type setStats struct {
	Len int `json:"len"`
}

type tableStats struct {
	NumSets int        `json:"num_sets"`
	Sets    []setStats `json:"sets"`
}

func (m *Monitor) stats(w http.ResponseWriter, _ *http.Request) {
	rsp := make(map[string]tableStats, len(m.tables))

	for id, t := range m.tables {
		sets := make([]setStats, t.NumSets())
		for i := range sets {
			sets[i] = setStats{Len: t.SetAt(i).Len()}
		}

		rsp[id] = tableStats{NumSets: t.NumSets(), Sets: sets}
	}

	writeJSON(w, rsp)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_rss_bytes"`
}

func (m *Monitor) resources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if dieOnErr(w, err) {
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if dieOnErr(w, err) {
		return
	}

	memInfo, err := proc.MemoryInfo()
	if dieOnErr(w, err) {
		return
	}

	writeJSON(w, resourceRsp{CPUPercent: cpuPercent, MemorySize: memInfo.RSS})
}

// profile collects a one-second CPU profile and returns it as JSON
// via google/pprof's profile.Profile, for on-demand debugging.
func (m *Monitor) profile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if dieOnErr(w, pprof.StartCPUProfile(buf)) {
		return
	}

	time.Sleep(time.Second)
	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if dieOnErr(w, err) {
		return
	}

	writeJSON(w, prof)
}

// Footprint reports a table's approximate in-memory size, for callers
// that want the number without going through the HTTP endpoint.
func Footprint(t *table.Table) (int64, error) {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(t)
	serializer.SetMaxDepth(2)

	buf := bytes.NewBuffer(nil)
	if err := serializer.Serialize(buf); err != nil {
		return 0, fmt.Errorf("monitoring: serializing footprint: %w", err)
	}

	return int64(buf.Len()), nil
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if dieOnErr(w, err) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func dieOnErr(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, "error: %s", err)

	return true
}
