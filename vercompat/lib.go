/*
Package vercompat implements the datapipe version-compatibility policy: on the
0.x release line any minor bump is backward-incompatible (consumers pin exact
versions), while from 1.x on conventional same-major compatibility holds.
*/
package vercompat

import (
	"github.com/datapipe-dev/vercompat/internal/log"
	"github.com/datapipe-dev/vercompat/vercompat/logger"
)

func SetLogger(logger logger.Logger) {
	log.Log = logger
}
