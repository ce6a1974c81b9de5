package size

import (
	"github.com/srlehn/termcaps/internal/errors"
)

// newErr joins the sentinel kind with the platform error so both match errors.Is.
func newErr(kind error, cause error) error {
	if cause == nil {
		return errors.Wrap(kind, 1)
	}
	return errors.Join(kind, cause)
}
