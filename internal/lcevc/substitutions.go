package lcevc

import "exoplayerlcevc/internal/patch"

// Substitutions returns the rules that move the decoder sources and build
// scripts from the androidx.media3 namespace to ExoPlayer 2's.
func Substitutions() patch.Rules {
	return patch.NewRules(
		patch.Rule{Old: "androidx.media3.common.Format", New: "com.google.android.exoplayer2.Format"},
		patch.Rule{Old: "androidx.media3.common.util.Log", New: "com.google.android.exoplayer2.util.Log"},
		patch.Rule{Old: "androidx.media3.common.C", New: "com.google.android.exoplayer2.C"},
		patch.Rule{Old: "androidx.media3.common.util.Util", New: "com.google.android.exoplayer2.util.Util"},

		patch.Rule{Old: "androidx.media3.exoplayer.DefaultRenderersFactory", New: "com.google.android.exoplayer2.DefaultRenderersFactory"},
		patch.Rule{Old: "androidx.media3.exoplayer.Renderer", New: "com.google.android.exoplayer2.Renderer"},
		patch.Rule{Old: "androidx.media3.exoplayer.RenderersFactory", New: "com.google.android.exoplayer2.RenderersFactory"},
		patch.Rule{Old: "androidx.media3.exoplayer.mediacodec.MediaCodecSelector", New: "com.google.android.exoplayer2.mediacodec.MediaCodecSelector"},
		patch.Rule{Old: "androidx.media3.exoplayer.video.MediaCodecVideoRenderer", New: "com.google.android.exoplayer2.video.MediaCodecVideoRenderer"},
		patch.Rule{Old: "androidx.media3.exoplayer.video.VideoRendererEventListener", New: "com.google.android.exoplayer2.video.VideoRendererEventListener"},

		patch.Rule{Old: "androidx.media3.common.util.Assertions.checkNotNull", New: "com.google.android.exoplayer2.util.Assertions.checkNotNull"},
		patch.Rule{Old: "import static androidx.media3.common.util.MediaFormatUtil.isVideoFormat;", New: ""},
		patch.Rule{Old: "import androidx.media3.common.util.UnstableApi;", New: ""},
		patch.Rule{Old: "androidx.media3.exoplayer.mediacodec.DefaultMediaCodecAdapterFactory", New: "com.google.android.exoplayer2.mediacodec.DefaultMediaCodecAdapterFactory"},
		patch.Rule{Old: "androidx.media3.exoplayer.mediacodec.MediaCodecAdapter", New: "com.google.android.exoplayer2.mediacodec.MediaCodecAdapter"},
		patch.Rule{Old: "androidx.media3.exoplayer.mediacodec.SynchronousMediaCodecAdapter", New: "com.google.android.exoplayer2.mediacodec.SynchronousMediaCodecAdapter"},

		// ExoPlayer 2 has no MediaFormatUtil.isVideoFormat, so the adapter
		// factory always builds the LCEVC adapter.
		patch.Rule{Old: "new DefaultMediaCodecAdapterFactory().createAdapter(configuration);", New: ""},
		patch.Rule{Old: "new LcevcSynchronousMediaCodecAdapter.Factory().createAdapter(configuration) :", New: ""},
		patch.Rule{Old: "return isVideoFormat(configuration.mediaFormat) ?", New: "return new LcevcSynchronousMediaCodecAdapter.Factory().createAdapter(configuration);"},

		patch.Rule{Old: "androidx.media3.util.TraceUtil", New: "com.google.android.exoplayer2.util.TraceUtil"},
		patch.Rule{Old: "androidx.media3.common.util.TraceUtil", New: "com.google.android.exoplayer2.util.TraceUtil"},
		patch.Rule{Old: "androidx.media3.decoder.CryptoInfo", New: "com.google.android.exoplayer2.decoder.CryptoInfo"},
		patch.Rule{Old: "androidx.media3.common.util.NonNullApi", New: "com.google.android.exoplayer2.util.NonNullApi"},

		// Gradle wiring.
		patch.Rule{Old: "gradle.ext.androidxMediaSettingsDir/", New: "gradle.ext.exoplayerSettingsDir/"},
		patch.Rule{Old: "namespace 'com.vnova.lcevc.decoder'", New: ""},
		patch.Rule{Old: "implementation project(modulePrefix + 'lib-decoder'", New: "implementation project(modulePrefix + 'library-decoder'"},
		patch.Rule{Old: "implementation project(modulePrefix + 'lib-exoplayer'", New: "implementation project(modulePrefix + 'library-core'"},
		patch.Rule{Old: "testImplementation project(modulePrefix + 'test-utils')", New: "testImplementation project(modulePrefix + 'testutils')"},
		patch.Rule{Old: "@UnstableApi", New: ""},
	)
}
