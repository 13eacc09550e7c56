package git

import "errors"

var ErrDirtyRepository = errors.New("the repository is dirty")
