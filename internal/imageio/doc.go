// Package imageio decodes image files into bitplane.Image values and encodes
// them back to disk.
//
// Design:
//   • Decoders come from the image.RegisterFormat side effects of the codec
//     imports in registry.go; the format is sniffed from the file contents.
//   • Encoders are chosen by output file extension through a registry
//     (extension → Codec), so adding a format is one Register call.
//   • Only 8-bit color inputs are accepted; alpha is dropped.
package imageio
