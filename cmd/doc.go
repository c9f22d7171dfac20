// Package cmd defines the exoplayer-lcevc root command. It takes the
// ExoPlayer release and the checkout location, and hands them to the
// pipeline, rendered either by the progress view or by the logger.
package cmd
