package universetest

import (
	"fmt"
	"os"

	"github.com/go-drift/universe/pkg/universe"
	"gopkg.in/yaml.v3"
)

// MessagesFromYAML decodes a YAML list into messages. The message type's
// yaml tags define the fixture format.
func MessagesFromYAML[M any](data []byte) ([]M, error) {
	var msgs []M
	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("universetest: decode messages: %w", err)
	}
	return msgs, nil
}

// LoadMessages reads a YAML fixture file containing a list of messages,
// typically from a package's testdata directory.
func LoadMessages[M any](path string) ([]M, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("universetest: read fixture: %w", err)
	}
	return MessagesFromYAML[M](data)
}

// Replay dispatches msgs to u in order.
func Replay[S universe.Core[M], M any](u *universe.Universe[S, M], msgs []M) {
	for _, msg := range msgs {
		u.Dispatch(msg)
	}
}
