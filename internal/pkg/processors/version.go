package processors

// Version identifies this build of the lowering pass, surfaced by
// cmd/corelower's --version flag.
const Version = "0.1.0"
