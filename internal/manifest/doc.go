// Package manifest generates and reads Bedrock pack manifests (manifest.json).
//
// A manifest identifies a pack by UUID and version and declares exactly one
// module whose type matches the pack kind: "data" for behavior packs and
// "resources" for resource packs. Behavior packs created together with a
// resource pack list it under dependencies.
package manifest
