package test_test

import (
	"context"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/clipdata"
	"github.com/loopcontext/clipdata/test"
	mock_clipdata "github.com/loopcontext/clipdata/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Template pipeline", func() {
	var (
		ctrl     *gomock.Controller
		obs      *mock_clipdata.MockObserver
		fsys     *test.MemFS
		pipeline *clipdata.TemplatePipeline
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		obs = mock_clipdata.NewMockObserver(ctrl)
		fsys = test.NewMemFS()
		pipeline = clipdata.NewTemplatePipeline(clipdata.TemplatePipelineOptions{
			Config: clipdata.Config{NowFn: func() time.Time {
				return time.Date(2025, 3, 9, 14, 5, 0, 0, time.UTC)
			}},
			FS:       fsys,
			Observer: obs,
		})
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should extract strings from every eligible file", func() {
		fsys.Put("/data/emojis.json", test.DataFile)
		fsys.Put("/data/symbols.json", `[{"name": "Coffee"}, {"keywords": "arrow"}]`)
		fsys.Put("/data/countries.json", `[{"name": "Germany"}]`)
		fsys.Put("/data/notes.txt", `{"name": "ignored"}`)
		obs.EXPECT().OnFileSkipped("countries.json")
		obs.EXPECT().OnFileExtracted("emojis.json", 6)
		obs.EXPECT().OnFileExtracted("symbols.json", 1)

		report, err := pipeline.Run(context.Background(), "/po/clip.pot", "/data")
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Files).To(Equal([]string{"/data/emojis.json", "/data/symbols.json"}))
		Expect(report.Skipped).To(Equal([]string{"countries.json"}))
		Expect(report.Strings).To(Equal(7))

		pot, ok := fsys.Get("/po/clip.pot")
		Expect(ok).To(BeTrue())
		Expect(pot).To(ContainSubstring("\"POT-Creation-Date: 2025-03-09 14:05+0000\\n\"\n"))
		Expect(pot).To(ContainSubstring("#: emojis.json, symbols.json\nmsgid \"Say \\\"hi\\\"\"\nmsgstr \"\"\n\n"))
		Expect(pot).To(ContainSubstring("msgid \"arrow\""))
		Expect(pot).NotTo(ContainSubstring("Germany"))
		Expect(pot).NotTo(ContainSubstring("ignored"))
	})

	It("should continue past a malformed file", func() {
		fsys.Put("/data/broken.json", `{"name": `)
		fsys.Put("/data/emojis.json", test.DataFile)
		obs.EXPECT().OnFileFailed("broken.json", gomock.Any())
		obs.EXPECT().OnFileExtracted("emojis.json", 6)

		report, err := pipeline.Run(context.Background(), "/po/clip.pot", "/data")
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Failed).To(Equal([]string{"broken.json"}))
		Expect(report.Strings).To(Equal(6))
		Expect(pipeline.Stats().FileFailures).To(HaveKeyWithValue("broken.json", 1))

		pot, _ := fsys.Get("/po/clip.pot")
		Expect(pot).To(ContainSubstring("#: broken.json, emojis.json\nmsgid \"Coffee\""))
	})

	It("should report nothing to do for a directory without data files", func() {
		fsys.Put("/data/readme.md", "# data")

		report, err := pipeline.Run(context.Background(), "/po/clip.pot", "/data")
		Expect(err).NotTo(HaveOccurred())
		Expect(report.NothingToDo).To(BeTrue())
		_, ok := fsys.Get("/po/clip.pot")
		Expect(ok).To(BeFalse())
	})

	It("should reject a missing input directory", func() {
		_, err := pipeline.Run(context.Background(), "/po/clip.pot", "/missing")
		Expect(clipdata.IsKind(err, clipdata.KindUsage)).To(BeTrue())
	})

	It("should reject an input path that is a file", func() {
		fsys.Put("/data/emojis.json", test.DataFile)
		_, err := pipeline.Run(context.Background(), "/po/clip.pot", "/data/emojis.json")
		Expect(clipdata.IsKind(err, clipdata.KindUsage)).To(BeTrue())
	})

	It("should write an empty template when every file is malformed", func() {
		fsys.Put("/data/broken.json", `[`)
		obs.EXPECT().OnFileFailed("broken.json", gomock.Any())

		report, err := pipeline.Run(context.Background(), "/po/clip.pot", "/data")
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Strings).To(Equal(0))
		pot, ok := fsys.Get("/po/clip.pot")
		Expect(ok).To(BeTrue())
		Expect(pot).NotTo(ContainSubstring("#: broken.json"))
	})
})
