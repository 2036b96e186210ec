package workerpool

import "encoding/json"

// Job is the serialized form of a WorkUnit handed to a re-exec'd
// transcode child over the AUDIOMIRROR_TRANSCODE_JOB environment variable.
// The child reconstructs its codec.Set by parsing the same CLI flags the
// parent was invoked with, so Job only needs the two codec names (not their
// extra flags) plus the job's own paths.
type Job struct {
	DecoderName string `json:"decoder"`
	EncoderName string `json:"encoder"`
	InputPath   string `json:"input"`
	OutputPath  string `json:"output"`
	Mode        uint32 `json:"mode"`
	DryRun      bool   `json:"dry_run"`
}

// Marshal serializes j for transport over an environment variable.
func (j Job) Marshal() (string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalJob parses a Job previously produced by Marshal.
func UnmarshalJob(s string) (Job, error) {
	var j Job
	err := json.Unmarshal([]byte(s), &j)
	return j, err
}
