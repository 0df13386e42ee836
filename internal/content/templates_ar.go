package content

import "github.com/hailamir/academic-report-api/internal/models"

var titlesAR = map[models.SectionKind]string{
	models.SectionCoverPage:        "صفحة الغلاف",
	models.SectionTableOfContents:  "جدول المحتويات",
	models.SectionIntroduction:     "المقدمة",
	models.SectionLiteratureReview: "مراجعة الأدبيات",
	models.SectionMethodology:      "المنهجية",
	models.SectionResultsAnalysis:  "النتائج والتحليل",
	models.SectionDiscussion:       "المناقشة",
	models.SectionConclusion:       "الخاتمة",
	models.SectionReferences:       "المراجع",
}

var templatesAR = map[models.SectionKind]Template{
	models.SectionIntroduction: {
		Paragraphs: []string{
			"يمثل مجال {topic} منطقة بحثية أكاديمية مهمة حظيت باهتمام كبير في السنوات الأخيرة. يهدف هذا التقرير الشامل إلى تقديم تحليل متعمق للوضع الحالي للبحث والمنهجيات والنتائج ضمن هذا المجال.",
			"لا يمكن المبالغة في أهمية دراسة {topic} حيث أنها تساهم في فهمنا للمبادئ الأساسية والتطبيقات العملية. من خلال التحقيق والتحليل المنهجي، طور الباحثون نهجاً متنوعة لمعالجة التحديات والفرص ضمن هذا المجال.",
			"هذا التقرير منظم لتقديم نظرة عامة شاملة، بدءاً من مراجعة شاملة للأدبيات التي تبحث في البحوث الموجودة والأطر النظرية، متبوعة بالمنهجية المستخدمة وعرض النتائج وتحليلها.",
			"الهدف من هذا التقرير هو تجميع المعرفة الحالية، وتحديد الفجوات في الأدبيات، واقتراح اتجاهات للبحث المستقبلي. من خلال فحص وجهات نظر ونهج متعددة، نهدف إلى المساهمة في الخطاب العلمي المستمر في هذا المجال المهم للدراسة.",
		},
	},
	models.SectionLiteratureReview: {
		Paragraphs: []string{
			"يستعرض هذا القسم الأدبيات الموجودة المتعلقة بـ {topic}. يوفر التحليل الشامل للدراسات والنظريات والنتائج السابقة الأساس لهذا البحث.",
		},
		Subsections: []Subsection{
			{
				Title: "اتجاهات البحث الحالية",
				Lead:  "أظهرت البحوث حول {topic} تطورات مهمة خلال السنوات الأخيرة. تشمل خطوط البحث الرئيسية:",
				Bullets: []string{
					"تحليل شامل لمنهجيات البحث الراسخة",
					"دمج الأطر النظرية مع التطبيقات العملية",
					"نهج قائمة على الأدلة لفهم الاتجاهات الحالية",
					"تقييم نقدي لنماذج البحث الموجودة",
				},
			},
			{
				Title: "الأطر النظرية",
				Lead:  "شكلت عدة أطر نظرية طريقة تناول الباحثين لموضوع {topic}، ويقدم كل منها منظوراً مميزاً:",
				Bullets: []string{
					"النظريات التأسيسية التي يقوم عليها المجال",
					"النماذج المتنافسة ونقاط الاختلاف بينها",
					"التحسينات الحديثة المدفوعة بالأدلة التجريبية",
				},
			},
			{
				Title: "النهج المنهجية",
				Lead:  "تعكس الأدبيات مجموعة واسعة من الخيارات المنهجية، من دراسات الحالة النوعية إلى التصاميم الكمية واسعة النطاق:",
				Bullets: []string{
					"التحقيقات النوعية للحالات الفردية",
					"المسوحات الكمية والنمذجة الإحصائية",
					"التصاميم مختلطة الطرق التي تجمع بين التقليدين",
				},
			},
		},
	},
	models.SectionMethodology: {
		Paragraphs: []string{
			"يصف هذا القسم منهجية البحث المستخدمة في دراسة {topic}. يتم توضيح النهج وطرق جمع البيانات وتقنيات التحليل لضمان الشفافية وقابلية التكرار.",
		},
		Subsections: []Subsection{
			{
				Title: "تصميم البحث",
				Lead:  "تتبع الدراسة تصميماً منظماً متوافقاً مع أهداف البحث:",
				Bullets: []string{
					"أسئلة وفرضيات بحثية محددة بوضوح",
					"تصميم مطابق لطبيعة التحقيق",
					"ضمانات للصدق والثبات",
				},
			},
			{
				Title: "طرق جمع البيانات",
				Lead:  "جُمعت البيانات المتعلقة بـ {topic} من خلال قنوات متكاملة:",
				Bullets: []string{
					"مراجعة منهجية للمصادر المنشورة",
					"أدوات جمع منظمة",
					"إجراءات موثقة لضمان الاتساق",
				},
			},
			{
				Title: "تقنيات التحليل",
				Lead:  "حُللت المواد المجمعة باستخدام تقنيات مناسبة لطبيعة البيانات:",
				Bullets: []string{
					"الترميز الموضوعي للمواد النوعية",
					"الإحصاءات الوصفية والاستدلالية",
					"التثليث عبر المصادر",
				},
			},
		},
	},
	models.SectionResultsAnalysis: {
		Paragraphs: []string{
			"يعرض هذا القسم نتائج البحث حول {topic} ويناقش آثارها. يتم تحليل النتائج في سياق أهداف البحث والأدبيات الموجودة.",
		},
		Subsections: []Subsection{
			{
				Title: "النتائج الرئيسية",
				Lead:  "يكشف فحص {topic} عن عدة نتائج جديرة بالملاحظة:",
				Bullets: []string{
					"أنماط متسقة مع الأدبيات الراسخة",
					"مجالات تختلف فيها النتائج الملاحظة عن التوقعات",
					"علاقات بين المتغيرات الرئيسية محل الاهتمام",
				},
			},
			{
				Title: "التحليل الإحصائي",
				Lead:  "تؤكد المعالجة الإحصائية للبيانات متانة النتائج:",
				Bullets: []string{
					"مقاييس موجزة تصف البيانات المجمعة",
					"اختبارات الدلالة للمقارنات الرئيسية",
					"فحوصات الحساسية للافتراضات التحليلية",
				},
			},
			{
				Title: "تفسير النتائج",
				Lead:  "عند تفسيرها في ضوء أسئلة البحث، تشير النتائج إلى:",
				Bullets: []string{
					"دعم للفرضيات الأساسية",
					"عوامل سياقية تشكل النتائج",
					"آثار على النظرية والتطبيق",
				},
			},
		},
	},
	models.SectionDiscussion: {
		Paragraphs: []string{
			"يقدم هذا القسم مناقشة تفصيلية لنتائج {topic}، مع فحص الأنماط والعلاقات وأهمية النتائج بالنسبة لأسئلة البحث.",
		},
		Subsections: []Subsection{
			{
				Title: "آثار النتائج",
				Lead:  "تحمل النتائج آثاراً على كل من البحث العلمي والممارسة:",
				Bullets: []string{
					"مساهمات في الفهم النظري للمجال",
					"عواقب عملية للممارسين",
					"أهمية للسياسات والقرارات المؤسسية",
				},
			},
			{
				Title: "المقارنة مع الدراسات السابقة",
				Lead:  "بالمقارنة مع الأعمال السابقة حول {topic}، تؤكد هذه الدراسة السجل وتوسعه:",
				Bullets: []string{
					"نقاط اتفاق مع البحوث السابقة",
					"اختلافات وأسبابها المحتملة",
					"جوانب جديدة قدمتها هذه الدراسة",
				},
			},
			{
				Title: "القيود والاتجاهات المستقبلية",
				Lead:  "كما في أي دراسة، تحد القيود من الاستنتاجات وتشير إلى أعمال مستقبلية:",
				Bullets: []string{
					"قيود النطاق والعينة",
					"الحدود المنهجية للتصميم",
					"مسارات واعدة للبحوث اللاحقة",
				},
			},
		},
	},
	models.SectionConclusion: {
		Paragraphs: []string{
			"لقد فحص هذا التقرير الشامل الجوانب متعددة الأوجه لـ {topic}، مقدماً رؤى حول اتجاهات البحث الحالية والنهج المنهجية والنتائج الرئيسية ضمن هذا المجال المهم للدراسة.",
			"يظهر التحليل المقدم في هذا التقرير التعقيد والأهمية لـ {topic} كمجال للتحقيق الأكاديمي. من خلال الفحص المنهجي للأدبيات الموجودة والأطر المنهجية والنتائج التجريبية، تظهر عدة استنتاجات مهمة.",
			"أولاً، تطور المجال بشكل كبير، حيث طور الباحثون نهجاً متطورة بشكل متزايد لمعالجة الأسئلة الأساسية والتحديات العملية. أدى دمج الأطر النظرية مع البحث التجريبي إلى فهم أكثر شمولية للمبادئ الأساسية.",
			"ثانياً، يعكس التنوع المنهجي الملاحظ في البحث الحالي الطبيعة متعددة التخصصات للمجال. يوفر هذا التنوع وجهات نظر ونهج متعددة، مما يثري فهمنا العام بينما يقدم فرصاً للابتكار المنهجي.",
			"أخيراً، تساهم النتائج المقدمة في هذا التقرير في الخطاب العلمي المستمر وتوفر أساساً لاتجاهات البحث المستقبلي. يقدم تحديد الفجوات والقيود الحالية إرشادات قيمة للباحثين الساعين لتطوير المعرفة في هذا المجال المهم.",
			"في الختام، يبقى {topic} مجالاً ديناميكياً ومتطوراً مع إمكانات كبيرة للنمو والتطوير المستمر. يجب أن يبني البحث المستقبلي على الأسس التي وضعتها الدراسات الحالية مع استكشاف النهج المبتكرة لمعالجة التحديات والفرص الناشئة.",
		},
	},
}

var elaborationsAR = []string{
	"علاوة على ذلك، يكتسب هذا الجانب أهمية خاصة لأنه يوضح دلالة هذا الموضوع.",
	"بالإضافة إلى ذلك، تجدر الإشارة إلى أن البحث في هذا المجال شهد تطوراً ملحوظاً.",
	"كما تشير البحوث إلى أن هذه النتائج تساهم في فهمنا لجوهر الموضوع.",
	"ومن الجدير بالذكر أن الدراسات المعاصرة كشفت عن رؤى جديدة.",
	"وفي هذا السياق، يتضح أن هناك حاجة إلى مزيد من التحقيق.",
	"وتقودنا هذه الملاحظة إلى إدراك ضرورة النظر في وجهات نظر متعددة.",
	"وبناء على ذلك، يمكننا ملاحظة أن الآثار بعيدة المدى.",
	"ونتيجة لهذا التحليل، يمكن استخلاص عدة استنتاجات مهمة.",
}

var fillersAR = []string{
	"تجدر الإشارة إلى أن",
	"من المهم أن نذكر أن",
	"علاوة على ذلك، من الجدير بالملاحظة أن",
	"بالإضافة إلى ذلك، ينبغي أن نأخذ في الاعتبار أن",
	"كما يمكن القول أن",
	"كما ذكر سابقاً",
	"بعبارة أخرى",
	"وبعبارة أبسط",
	"علاوة على ذلك، يكتسب هذا الجانب أهمية خاصة لأنه يوضح دلالة هذا الموضوع",
	"بالإضافة إلى ذلك، تجدر الإشارة إلى أن البحث في هذا المجال شهد تطوراً ملحوظاً",
}
