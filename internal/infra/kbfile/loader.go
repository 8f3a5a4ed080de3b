// Package kbfile loads the on-disk JSON knowledge base.
package kbfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/campushelp/helpdesk/internal/domain/helpdesk"
)

// Load reads and parses the knowledge base document. It is called once at
// startup; a missing or malformed file is the only fatal error in the system,
// since there is nothing to serve without it.
func Load(path string) (*helpdesk.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	var kb helpdesk.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	return &kb, nil
}
