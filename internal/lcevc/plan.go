package lcevc

import (
	"path/filepath"

	"exoplayerlcevc/internal/patch"
)

// Layout of the injected extension inside the ExoPlayer tree.
const (
	ExtensionDir = "extensions/lcevc"
	DecoderDir   = "extensions/lcevc/src/main/java/com/vnova/lcevc/decoder"
	DemoUtilDir  = "demos/main/src/main/java/com/google/android/exoplayer2/demo"
	LcevcDemoDir = "demos/main/src/mainLcevc/java/com/google/android/exoplayer2/demo"
	MediaList    = "demos/main/src/main/assets/media.exolist.json"
	DebugHelper  = "library/core/src/main/java/com/google/android/exoplayer2/util/DebugTextViewHelper.java"
)

// DefaultExclude lists the native build output directories left out of the
// decoder copy.
var DefaultExclude = []string{".cxx", "buildout"}

// Plan returns the ordered operations that add the LCEVC extension to the
// ExoPlayer clone at location. decoderSource is the decoder module to copy in;
// entries named in exclude are not copied. Copies come first so the
// substitution passes see the copied files.
func Plan(location, decoderSource string, exclude []string, rules patch.Rules) []patch.Op {
	at := func(rel string) string {
		return filepath.Join(location, filepath.FromSlash(rel))
	}
	edit := func(rel, old, repl string) patch.Op {
		return patch.Edit{Label: "patch " + rel, Path: at(rel), Old: old, New: repl, Fatal: true}
	}

	ops := []patch.Op{
		patch.Copy{
			Label: "copy DemoUtil.java to mainLcevc",
			Src:   at(DemoUtilDir + "/DemoUtil.java"),
			Dst:   at(LcevcDemoDir + "/DemoUtil.java"),
		},
		patch.Copy{
			Label:   "copy decoder module to " + ExtensionDir,
			Src:     decoderSource,
			Dst:     at(ExtensionDir),
			Exclude: exclude,
		},
		patch.RewriteTree{
			Label: "rename packages in decoder sources",
			Dir:   at(DecoderDir),
			Rules: rules,
		},
		patch.Rewrite{
			Label: "rename packages in decoder build scripts",
			Paths: []string{at(ExtensionDir + "/build.gradle"), at(ExtensionDir + "/publish.gradle")},
			Rules: rules,
		},
	}

	ops = append(ops, edit("settings.gradle", `apply from: `,
		`include modulePrefix + 'extension-lcevc'
project(modulePrefix + 'extension-lcevc').projectDir = new File(rootDir, 'extensions/lcevc')

apply from: `))

	ops = append(ops, edit("build.gradle", `allprojects {
    repositories {
        google()
        mavenCentral()
    }
`, `allprojects {
    repositories {
        google()
        mavenCentral()
        maven {
            name = "v-nova"
            url "https://gitlab.com/api/v4/groups/v-nova-group/-/packages/maven"
        }
    }
`))

	ops = append(ops, demoBuildEdits(edit)...)

	ops = append(ops,
		edit(MediaList, `[
  {
    "name": "Clear DASH",`, `[
  {
    "name": "LCEVC",
    "samples": [
      {
        "name": "HD (MP4, H264)",
        "uri": "https://dyctis843rxh5.cloudfront.net/vnIAZIaowG1K7qOt/master.m3u8"
      }
    ]
    },{
    "name": "Clear DASH",`),
		patch.ValidateJSON{Label: "validate " + MediaList, Path: at(MediaList)},
	)

	ops = append(ops,
		edit(LcevcDemoDir+"/DemoUtil.java",
			`import com.google.android.exoplayer2.DefaultRenderersFactory;`,
			`import com.vnova.lcevc.decoder.LcevcRenderersFactory;
import com.google.android.exoplayer2.DefaultRenderersFactory;
`),
		edit(LcevcDemoDir+"/DemoUtil.java",
			`    return new DefaultRenderersFactory(context.getApplicationContext())`,
			`    return new LcevcRenderersFactory(context.getApplicationContext())`),
	)

	ops = append(ops,
		edit("library/core/build.gradle", `    sourceSets {
        androidTest.assets.srcDir '../../testdata/src/test/assets/'
        test.assets.srcDir '../../testdata/src/test/assets/'
    }`, `    sourceSets {
        androidTest.assets.srcDir '../../testdata/src/test/assets/'
        test.assets.srcDir '../../testdata/src/test/assets/'
    }

    publishing {
        singleVariant('release')
    }`),
		edit("library/core/build.gradle",
			` releaseDescription = 'The ExoPlayer library core module.'`,
			` releaseDescription = 'The Lcevc compatible ExoPlayer library core module.'`),
	)

	ops = append(ops, debugHelperEdits(edit)...)

	ops = append(ops, edit(ExtensionDir+"/build.gradle", `    releaseArtifactId = 'media3-decoder-lcevc'
    releaseName = 'Media3 Lcevc decoder module'`, `    releaseArtifactId = 'extension-lcevc'
    releaseName = 'LCEVC extension for ExoPlayer.'`))

	return ops
}

type editFunc func(rel, old, repl string) patch.Op

func demoBuildEdits(edit editFunc) []patch.Op {
	const file = "demos/main/build.gradle"
	return []patch.Op{
		edit(file, `
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
}`, `
    productFlavors {
        noDecoderExtensions {
            dimension "decoderExtensions"
            buildConfigField "boolean", "USE_DECODER_EXTENSIONS", "false"
        }
        // This will enable all extensions excluding the MPEG-5 Part 2 (LCEVC) one
        withDecoderExtensions {
            dimension "decoderExtensions"
            buildConfigField "boolean", "USE_DECODER_EXTENSIONS", "true"
        }
        // This will enable all extensions including the MPEG-5 Part 2 (LCEVC) one
        withDecoderExtensionsWithLcevc {
            dimension "decoderExtensions"
            buildConfigField "boolean", "USE_DECODER_EXTENSIONS", "true"
        }
    }

    sourceSets {
        noDecoderExtensions {
            java.srcDirs = ['src/main']
        }
        withDecoderExtensions {
            java.srcDirs = ['src/main']
        }
        withDecoderExtensionsWithLcevc {
            java.srcDirs += 'src/mainLcevc'
            main {
                java {
                    exclude '**/DemoUtil.java'
                }
            }
        }
    }
}`),
		edit(file, `implementation project(modulePrefix + 'extension-ima')`,
			`implementation project(modulePrefix + 'extension-ima')
    withDecoderExtensionsWithLcevcImplementation project(modulePrefix + 'extension-lcevc')
`),
		edit(file, `shrinkResources true`, `shrinkResources false`),
		edit(file, `minifyEnabled true`, `minifyEnabled false`),
	}
}

// debugHelperEdits makes the debug overlay report the decoded VideoSize
// rather than the input Format, since LCEVC changes the output resolution.
func debugHelperEdits(edit editFunc) []patch.Op {
	return []patch.Op{
		edit(DebugHelper, `import android.widget.TextView;`,
			`import android.widget.TextView;
import com.google.android.exoplayer2.video.VideoSize;`),
		edit(DebugHelper, `    Format format = player.getVideoFormat();
    DecoderCounters decoderCounters = player.getVideoDecoderCounters();
`, `    Format format = player.getVideoFormat();
    VideoSize videoSize = player.getVideoSize();
    DecoderCounters decoderCounters = player.getVideoDecoderCounters();
`),
		edit(DebugHelper, `        + format.width
        + "x"
        + format.height
        + getPixelAspectRatioString(format.pixelWidthHeightRatio)
`, `        + videoSize.width
        + "x"
        + videoSize.height
        + getPixelAspectRatioString(videoSize.pixelWidthHeightRatio)
`),
	}
}
