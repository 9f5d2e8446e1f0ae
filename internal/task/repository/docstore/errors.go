package docstore

import "errors"

var ErrInvalidFile = errors.New("invalid task file: missing frontmatter")
