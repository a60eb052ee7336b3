// Package pack writes pack folders and the shared resource files inside them.
//
// CreateProject lays out a new behavior/resource pack pair. The remaining
// helpers are used when content is added to an existing pack: WriteDocument
// refuses to replace files unless asked to, AddLanguageEntry and
// AddItemTexture update the shared lang file and texture atlas, and
// CopyAsset drops embedded placeholder images next to new content.
package pack
