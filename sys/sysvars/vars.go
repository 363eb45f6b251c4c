package sysvars

import "os"

// DebugEnabled turns on verbose diagnostics, caller file:line in log output
// included.
var DebugEnabled = os.Getenv("QTCOLL_DEBUG") != ""
