package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

const artifactPrefix = "artifact:"

// Hash returns the hex SHA-256 digest of a rendered document.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// artifactKey names the artifact rendered from one SVG with one set of output
// options: "artifact:<format>:<digest>".
func artifactKey(svgHash string, opts ArtifactKeyOpts) string {
	encoded, _ := json.Marshal(opts)
	return artifactPrefix + opts.Format + ":" + Hash(append([]byte(svgHash+"\n"), encoded...))
}
