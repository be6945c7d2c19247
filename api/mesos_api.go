package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	MesosURL string
	Timeout  time.Duration
}

func NewMesosApi(conf *Config) *MesosApi {
	url := conf.MesosURL
	if url == "" {
		url = "http://localhost:5050"
	}

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &MesosApi{
		base:   strings.TrimRight(url, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// MesosApi talks to the maintenance endpoints of a mesos master. Every
// call is a single attempt, no retries; a connection failure or a non-2xx
// response comes back as an error carrying the response body.
type MesosApi struct {
	base   string
	client *http.Client
}

func (a *MesosApi) do(method, path string, body interface{}) ([]byte, error) {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.base+"/"+path, buf)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.WithFields(log.Fields{"method": method, "url": req.URL.String()}).Debug("mesos request")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(data)))
	}

	return data, nil
}

func (a *MesosApi) Status() (*ClusterStatus, error) {
	data, err := a.do("GET", "maintenance/status", nil)
	if err != nil {
		return nil, err
	}

	status := &ClusterStatus{}
	if err := json.Unmarshal(data, status); err != nil {
		return nil, err
	}

	return status, nil
}

func (a *MesosApi) GetSchedule() (*Schedule, error) {
	data, err := a.do("GET", "maintenance/schedule", nil)
	if err != nil {
		return nil, err
	}

	schedule := &Schedule{}
	if err := json.Unmarshal(data, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (a *MesosApi) PutSchedule(s *Schedule) error {
	_, err := a.do("POST", "maintenance/schedule", s)
	return err
}

func (a *MesosApi) MachineDown(ids []MachineID) error {
	_, err := a.do("POST", "machine/down", ids)
	return err
}

func (a *MesosApi) MachineUp(ids []MachineID) error {
	_, err := a.do("POST", "machine/up", ids)
	return err
}
