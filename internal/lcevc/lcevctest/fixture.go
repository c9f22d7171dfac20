// Package lcevctest builds miniature ExoPlayer and decoder-module trees that
// carry every anchor the LCEVC plan edits.
package lcevctest

import (
	"os"
	"path/filepath"
	"testing"
)

// Upstream maps paths relative to the clone root to their contents.
var Upstream = map[string]string{
	"settings.gradle": `gradle.ext.exoplayerModulePrefix = 'exoplayer-'
rootProject.name = 'exoplayer'
apply from: 'core_settings.gradle'
`,
	"build.gradle": `buildscript {
    repositories {
        google()
        mavenCentral()
    }
}
allprojects {
    repositories {
        google()
        mavenCentral()
    }
    project.ext {
        exoplayerPublishEnabled = false
    }
}
`,
	"demos/main/build.gradle": `android {
    buildTypes {
        release {
            shrinkResources true
            minifyEnabled true
        }
    }

    flavorDimensions "decoderExtensions"

    productFlavors {
        noDecoderExtensions {
            dimension "decoderExtensions"
            buildConfigField "boolean", "USE_DECODER_EXTENSIONS", "false"
        }
        withDecoderExtensions {
            dimension "decoderExtensions"
            buildConfigField "boolean", "USE_DECODER_EXTENSIONS", "true"
        }
    }
}

dependencies {
    implementation project(modulePrefix + 'extension-ima')
    withDecoderExtensionsImplementation project(modulePrefix + 'extension-av1')
}
`,
	"demos/main/src/main/assets/media.exolist.json": `[
  {
    "name": "Clear DASH",
    "samples": [
      {
        "name": "HD (MP4, H264)",
        "uri": "https://storage.googleapis.com/wvmedia/clear/h264/tears/tears.mpd"
      }
    ]
  }
]
`,
	"demos/main/src/main/java/com/google/android/exoplayer2/demo/DemoUtil.java": `package com.google.android.exoplayer2.demo;

import android.content.Context;
import com.google.android.exoplayer2.DefaultRenderersFactory;
import com.google.android.exoplayer2.RenderersFactory;

public final class DemoUtil {
  public static RenderersFactory buildRenderersFactory(Context context, boolean preferExtensionRenderer) {
    return new DefaultRenderersFactory(context.getApplicationContext())
        .setExtensionRendererMode(extensionRendererMode);
  }
}
`,
	"library/core/build.gradle": `android {
    namespace 'com.google.android.exoplayer2.core'

    sourceSets {
        androidTest.assets.srcDir '../../testdata/src/test/assets/'
        test.assets.srcDir '../../testdata/src/test/assets/'
    }
}

ext {
    releaseArtifactId = 'exoplayer-core'
    releaseDescription = 'The ExoPlayer library core module.'
}
apply from: '../../publish.gradle'
`,
	"library/core/src/main/java/com/google/android/exoplayer2/util/DebugTextViewHelper.java": `package com.google.android.exoplayer2.util;

import android.os.Looper;
import android.widget.TextView;
import com.google.android.exoplayer2.decoder.DecoderCounters;

public class DebugTextViewHelper {
  protected String getVideoString() {
    Format format = player.getVideoFormat();
    DecoderCounters decoderCounters = player.getVideoDecoderCounters();
    if (format == null || decoderCounters == null) {
      return "";
    }
    return "\n"
        + format.sampleMimeType
        + "(id:"
        + format.id
        + " r:"
        + format.width
        + "x"
        + format.height
        + getPixelAspectRatioString(format.pixelWidthHeightRatio)
        + getDecoderCountersBufferCountString(decoderCounters)
        + ")";
  }
}
`,
}

// Decoder maps paths relative to the decoder module root to their contents.
var Decoder = map[string]string{
	"build.gradle": `apply from: "$gradle.ext.androidxMediaSettingsDir/common_library_config.gradle"

android {
    namespace 'com.vnova.lcevc.decoder'
}

dependencies {
    implementation project(modulePrefix + 'lib-decoder')
    implementation project(modulePrefix + 'lib-exoplayer')
    testImplementation project(modulePrefix + 'test-utils')
}

ext {
    releaseArtifactId = 'media3-decoder-lcevc'
    releaseName = 'Media3 Lcevc decoder module'
}
apply from: '../../publish.gradle'
`,
	"publish.gradle": `apply plugin: 'maven-publish'
`,
	"src/main/java/com/vnova/lcevc/decoder/LcevcRenderersFactory.java": `package com.vnova.lcevc.decoder;

import android.content.Context;
import androidx.media3.common.C;
import androidx.media3.common.util.UnstableApi;
import androidx.media3.exoplayer.DefaultRenderersFactory;

@UnstableApi
public class LcevcRenderersFactory extends DefaultRenderersFactory {
  private long timeoutUs = C.TIME_UNSET;
}
`,
	"src/main/java/com/vnova/lcevc/decoder/LcevcMediaCodecAdapterFactory.java": `package com.vnova.lcevc.decoder;

import static androidx.media3.common.util.MediaFormatUtil.isVideoFormat;

import androidx.media3.common.util.UnstableApi;
import androidx.media3.exoplayer.mediacodec.DefaultMediaCodecAdapterFactory;
import androidx.media3.exoplayer.mediacodec.MediaCodecAdapter;

@UnstableApi
public final class LcevcMediaCodecAdapterFactory implements MediaCodecAdapter.Factory {
    public MediaCodecAdapter createAdapter(MediaCodecAdapter.Configuration configuration) throws IOException {
        return isVideoFormat(configuration.mediaFormat) ? new LcevcSynchronousMediaCodecAdapter.Factory().createAdapter(configuration) : new DefaultMediaCodecAdapterFactory().createAdapter(configuration);
    }
}
`,
	"src/main/java/com/vnova/lcevc/decoder/LcevcTimeHandle.java": `package com.vnova.lcevc.decoder;

import androidx.media3.common.C;

final class LcevcTimeHandle {
  long presentationTimeUs = C.TIME_UNSET;
}
`,
	".cxx/Debug/cmake.log":       "native build output\n",
	"buildout/arm64/liblcevc.so": "binary\n",
}

// Write materialises files under root.
func Write(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// Read returns the contents of rel below root.
func Read(t testing.TB, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
