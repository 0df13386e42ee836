package content

import "github.com/hailamir/academic-report-api/internal/models"

var titlesEN = map[models.SectionKind]string{
	models.SectionCoverPage:        "Cover Page",
	models.SectionTableOfContents:  "Table of Contents",
	models.SectionIntroduction:     "Introduction",
	models.SectionLiteratureReview: "Literature Review",
	models.SectionMethodology:      "Methodology",
	models.SectionResultsAnalysis:  "Results and Analysis",
	models.SectionDiscussion:       "Discussion",
	models.SectionConclusion:       "Conclusion",
	models.SectionReferences:       "References",
}

var templatesEN = map[models.SectionKind]Template{
	models.SectionIntroduction: {
		Paragraphs: []string{
			"The field of {topic} represents a crucial area of academic inquiry that has gained significant attention in recent years. This comprehensive report aims to provide an in-depth analysis of the current state of research, methodologies, and findings within this domain.",
			"The importance of studying {topic} cannot be overstated, as it contributes to our understanding of fundamental principles and practical applications. Through systematic investigation and analysis, researchers have developed various approaches to address the challenges and opportunities within this field.",
			"This report is structured to provide a comprehensive overview, beginning with a thorough literature review that examines existing research and theoretical frameworks. Subsequently, we explore the methodological approaches commonly employed in this area of study, followed by an analysis of current findings and their implications.",
			"The objective of this report is to synthesize current knowledge, identify gaps in the literature, and propose directions for future research. By examining multiple perspectives and approaches, we aim to contribute to the ongoing scholarly discourse in this important field of study.",
		},
	},
	models.SectionLiteratureReview: {
		Paragraphs: []string{
			"This section reviews the existing literature related to {topic}. A comprehensive analysis of previous studies, theories, and findings provides the foundation for this research.",
		},
		Subsections: []Subsection{
			{
				Title: "Current Research Trends",
				Lead:  "Research on {topic} has demonstrated significant developments over recent years. The main lines of inquiry include:",
				Bullets: []string{
					"Comprehensive analysis of established research methodologies",
					"Integration of theoretical frameworks with practical applications",
					"Evidence-based approaches to understanding current trends",
					"Critical evaluation of existing research paradigms",
				},
			},
			{
				Title: "Theoretical Frameworks",
				Lead:  "Several theoretical frameworks have shaped how scholars approach {topic}, each offering a distinct lens on the subject:",
				Bullets: []string{
					"Foundational theories underpinning the field",
					"Competing models and their points of divergence",
					"Recent refinements driven by empirical evidence",
				},
			},
			{
				Title: "Methodological Approaches",
				Lead:  "The literature reflects a broad range of methodological choices, from qualitative case studies to large-scale quantitative designs:",
				Bullets: []string{
					"Qualitative investigations of individual cases",
					"Quantitative surveys and statistical modelling",
					"Mixed-method designs combining both traditions",
				},
			},
		},
	},
	models.SectionMethodology: {
		Paragraphs: []string{
			"This section describes the research methodology employed in this study of {topic}. The approach, data collection methods, and analytical techniques are outlined to ensure transparency and reproducibility.",
		},
		Subsections: []Subsection{
			{
				Title: "Research Design",
				Lead:  "The study follows a structured design aligned with the research objectives:",
				Bullets: []string{
					"Clearly defined research questions and hypotheses",
					"A design matched to the nature of the inquiry",
					"Safeguards for validity and reliability",
				},
			},
			{
				Title: "Data Collection Methods",
				Lead:  "Data relevant to {topic} was gathered through complementary channels:",
				Bullets: []string{
					"Systematic review of published sources",
					"Structured collection instruments",
					"Documented procedures for consistency",
				},
			},
			{
				Title: "Analysis Techniques",
				Lead:  "Collected material was analyzed using techniques appropriate to the data:",
				Bullets: []string{
					"Thematic coding of qualitative material",
					"Descriptive and inferential statistics",
					"Triangulation across sources",
				},
			},
		},
	},
	models.SectionResultsAnalysis: {
		Paragraphs: []string{
			"This section presents the findings of the research on {topic} and discusses their implications. The results are analyzed in the context of the research objectives and existing literature.",
		},
		Subsections: []Subsection{
			{
				Title: "Key Findings",
				Lead:  "The examination of {topic} yields several notable findings:",
				Bullets: []string{
					"Patterns consistent with the established literature",
					"Areas where observed outcomes diverge from expectations",
					"Relationships between the principal variables of interest",
				},
			},
			{
				Title: "Statistical Analysis",
				Lead:  "Statistical treatment of the data underscores the robustness of the findings:",
				Bullets: []string{
					"Summary measures describing the collected data",
					"Tests of significance for the main comparisons",
					"Sensitivity checks on analytical assumptions",
				},
			},
			{
				Title: "Interpretation of Results",
				Lead:  "Interpreted against the research questions, the results suggest:",
				Bullets: []string{
					"Support for the primary hypotheses",
					"Contextual factors shaping the outcomes",
					"Implications for theory and practice",
				},
			},
		},
	},
	models.SectionDiscussion: {
		Paragraphs: []string{
			"This section provides a detailed discussion of the findings on {topic}, examining patterns, relationships, and the significance of the results in relation to the research questions.",
		},
		Subsections: []Subsection{
			{
				Title: "Implications of Findings",
				Lead:  "The findings carry implications for both scholarship and practice:",
				Bullets: []string{
					"Contributions to the theoretical understanding of the field",
					"Practical consequences for practitioners",
					"Relevance for policy and institutional decisions",
				},
			},
			{
				Title: "Comparison with Previous Studies",
				Lead:  "Set against earlier work on {topic}, this study both confirms and extends the record:",
				Bullets: []string{
					"Points of agreement with prior research",
					"Divergences and their likely causes",
					"Novel aspects introduced by this study",
				},
			},
			{
				Title: "Limitations and Future Directions",
				Lead:  "As with any study, limitations bound the conclusions and point toward future work:",
				Bullets: []string{
					"Constraints of scope and sample",
					"Methodological boundaries of the design",
					"Promising avenues for subsequent research",
				},
			},
		},
	},
	models.SectionConclusion: {
		Paragraphs: []string{
			"This comprehensive report has examined the multifaceted aspects of {topic}, providing insights into current research trends, methodological approaches, and key findings within this important field of study.",
			"The analysis presented in this report demonstrates the complexity and significance of {topic} as an area of academic inquiry. Through systematic examination of existing literature, methodological frameworks, and empirical findings, several important conclusions emerge.",
			"First, the field has evolved significantly, with researchers developing increasingly sophisticated approaches to address fundamental questions and practical challenges. The integration of theoretical frameworks with empirical research has led to a more comprehensive understanding of the underlying principles.",
			"Second, the methodological diversity observed in current research reflects the interdisciplinary nature of the field. This diversity provides multiple perspectives and approaches, enriching our overall understanding while presenting opportunities for methodological innovation.",
			"Finally, the findings presented in this report contribute to the ongoing scholarly discourse and provide a foundation for future research directions. The identification of current gaps and limitations offers valuable guidance for researchers seeking to advance knowledge in this important area.",
			"In conclusion, {topic} remains a dynamic and evolving field with significant potential for continued growth and development. Future research should build upon the foundations established by current scholarship while exploring innovative approaches to address emerging challenges and opportunities.",
		},
	},
}

// elaborationsEN is appended, in order, when a section runs below its band.
var elaborationsEN = []string{
	"Furthermore, this aspect is particularly important because it demonstrates the significance of this topic.",
	"Additionally, it should be noted that research in this area has shown considerable development.",
	"Moreover, research indicates that these findings contribute to our understanding of the subject matter.",
	"It is also worth mentioning that contemporary studies have revealed new insights.",
	"In this context, it becomes clear that further investigation is warranted.",
	"This observation leads us to understand that multiple perspectives must be considered.",
	"Consequently, we can observe that the implications are far-reaching.",
	"As a result of this analysis, several important conclusions can be drawn.",
}

// fillersEN lists generic transition phrasing removed first when trimming.
var fillersEN = []string{
	"it should be noted that",
	"it is important to mention that",
	"furthermore, it is worth noting that",
	"additionally, we should consider that",
	"moreover, it can be said that",
	"as previously mentioned",
	"in other words",
	"to put it simply",
	"furthermore, this aspect is particularly important because it demonstrates the significance of this topic",
	"additionally, it should be noted that research in this area has shown considerable development",
}
