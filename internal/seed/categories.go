package seed

import "english_quest_backend/internal/model"

// Categories returns the built-in course tree used when the store holds no categories yet.
func Categories() []model.Category {
	return []model.Category{
		{
			ID:          "verb-tenses",
			Title:       "Verb Tenses",
			Description: "Aprende y domina los tiempos verbales con teoría resumida y práctica estilo selectividad.",
			Color:       "bg-red-500",
			Topics: []model.Topic{
				{
					ID:              "tense-structure",
					Title:           "Verb Tenses - Use + Structure",
					Description:     "Visión general de la formación y uso de los tiempos.",
					Icon:            model.IconBookOpen,
					ManualTheory:    tenseStructureTheory,
					ManualQuestions: tenseStructureQuestions(),
				},
				{
					ID:              "pres-simple-cont",
					Title:           "Present Simple vs Continuous",
					Description:     "¿Rutina o ahora mismo?",
					Icon:            model.IconClock,
					ManualTheory:    presSimpleContTheory,
					ManualQuestions: presSimpleContQuestions(),
				},
				{
					ID:              "past-simple-cont",
					Title:           "Past Simple vs Past Continuous",
					Description:     "Interrupciones, descripciones y narración en pasado.",
					Icon:            model.IconHistory,
					ManualTheory:    pastSimpleContTheory,
					ManualQuestions: pastSimpleContQuestions(),
				},
				{
					ID:              "past-perfect-simple",
					Title:           "Past Simple vs Present Perfect vs Past Perfect",
					Description:     "Secuencias temporales, experiencias y pasado anterior.",
					Icon:            model.IconGitBranch,
					ManualTheory:    pastPerfectSimpleTheory,
					ManualQuestions: pastPerfectSimpleQuestions(),
				},
				{
					ID:              "perf-continuous",
					Title:           "Present Perfect Continuous vs Past Perfect Continuous",
					Description:     "Duración, causas y consecuencias en presente y pasado.",
					Icon:            model.IconRepeat,
					ManualTheory:    perfContinuousTheory,
					ManualQuestions: perfContinuousQuestions(),
				},
			},
		},
	}
}

const tenseStructureTheory = `# Verb Tenses: Overview

Una guía rápida para no perderte con la estructura de los verbos.

## 1. Simple Tenses (Hechos, hábitos, completado)
* **Present Simple:** Sujeto + Verbo (+s/es). *Habits, truths.*
* **Past Simple:** Sujeto + Verbo-ed/2ª col. *Finished actions.*
* **Future Simple:** Will + Verbo. *Decisions, predictions.*

## 2. Continuous Tenses (En progreso)
Siempre llevan el verbo **TO BE** + Verbo-**ING**.
* **Present Cont:** am/is/are + doing. *Now.*
* **Past Cont:** was/were + doing. *Specific moment in past.*

## 3. Perfect Tenses (Conexión, antes de)
Siempre llevan el verbo **HAVE** + **Participio (3ª col)**.
* **Present Perf:** have/has + done. *Past connecting to now.*
* **Past Perf:** had + done. *Past before another past.*

> **Pildora Clave:**
> Si ves "Continuous", busca el **-ING**.
> Si ves "Perfect", busca el **HAVE + Participio**.`

func tenseStructureQuestions() []model.Question {
	return []model.Question{
		{ID: "vt1", Text: "By the time she arrived, I ___ (wait) for hours.", Options: []string{"had been waiting", "have waited", "am waiting", "wait"}, CorrectAnswer: "had been waiting", Explanation: "Past Perfect Continuous: Acción duradera anterior a otra acción pasada."},
		{ID: "vt2", Text: "Look at the clouds! It ___ (rain) soon.", Options: []string{"is going to rain", "rains", "rained", "has rained"}, CorrectAnswer: "is going to rain", Explanation: "Futuro con evidencia visual (Going to)."},
		{ID: "vt3", Text: "While I ___ (cook), the lights went out.", Options: []string{"was cooking", "cooked", "am cooking", "have cooked"}, CorrectAnswer: "was cooking", Explanation: "Past Continuous: Acción larga interrumpida por una corta."},
		{ID: "vt4", Text: "I ___ (know) him since we were children.", Options: []string{"have known", "know", "am knowing", "knew"}, CorrectAnswer: "have known", Explanation: "Present Perfect: Acción que empieza en el pasado y continúa (Since). 'Know' es stative verb."},
		{ID: "vt5", Text: "Next year, we ___ (live) in this house for 20 years.", Options: []string{"will have been living", "are living", "will live", "have lived"}, CorrectAnswer: "will have been living", Explanation: "Future Perfect Continuous: Duración proyectada hacia el futuro."},
		{ID: "vt6", Text: "She usually ___ (go) to the gym, but today she is resting.", Options: []string{"goes", "is going", "went", "has gone"}, CorrectAnswer: "goes", Explanation: "Hábito/Rutina = Present Simple."},
		{ID: "vt7", Text: "The train ___ (leave) at 9:00 PM tonight.", Options: []string{"leaves", "will leave", "is leaving", "has left"}, CorrectAnswer: "leaves", Explanation: "Horarios oficiales (Timetables) = Present Simple con valor de futuro."},
		{ID: "vt8", Text: "I promise I ___ (call) you later.", Options: []string{"will call", "am calling", "call", "going to call"}, CorrectAnswer: "will call", Explanation: "Promesas = Will."},
		{ID: "vt9", Text: "When we got to the station, the train ___ (already/leave).", Options: []string{"had already left", "has already left", "already left", "was leaving"}, CorrectAnswer: "had already left", Explanation: "Past Perfect: Pasado del pasado."},
		{ID: "vt10", Text: "They ___ (play) football when it started to snow.", Options: []string{"were playing", "played", "have played", "had played"}, CorrectAnswer: "were playing", Explanation: "Past Continuous: Contexto de fondo interrumpido."},
	}
}

const presSimpleContTheory = `# Present Simple vs Present Continuous

## 1. La Diferencia Fundamental

### Present Simple (Rutina / Permanente)
Se usa para cosas que son **verdad en general**, hábitos, rutinas o situaciones permanentes.
* **Keywords:** Always, usually, often, every day, on Mondays, rarely.
* *Example:* "I work in a bank." (Es mi profesión, es permanente).

### Present Continuous (Temporal / En progreso)
Se usa para acciones que están ocurriendo **en este momento**, tendencias actuales o situaciones temporales.
* **Keywords:** Now, at the moment, currently, look!, listen!, this week, these days.
* *Example:* "I am working at home this week." (Es una excepción temporal).

## 2. Stative Verbs (¡Cuidado!)
Hay verbos que describen **estados, pensamientos o sentimientos**, NO acciones. Estos verbos **casi nunca** van en Continuous, aunque sea "ahora mismo".

*   **Verbos:** Like, love, hate, want, need, prefer, know, realize, suppose, mean, understand, believe, remember, belong, fit, contain, consist, seem.
*   *Incorrecto:* I am wanting a pizza. ❌
*   *Correcto:* I want a pizza. ✅

### La Excepción: Cambio de Significado
Algunos verbos cambian de significado según el tiempo.
*   **Think:**
    *   *I think it's good.* (Opinión -> Simple)
    *   *I am thinking about buying a car.* (Proceso mental -> Continuous)
*   **Have:**
    *   *I have a car.* (Posesión -> Simple)
    *   *I am having lunch.* (Acción de comer -> Continuous)

---

## 3. Spot the difference 🕵️‍♂️

Fíjate en la diferencia entre el **hábito** (quién es él) y la **acción actual** (qué hace ahora).

<!-- COMIC_PLACEHOLDER -->

### The Contrast
*   **Panel 1 (Simple):** *He solves crimes.* Lo que el personaje ES o HACE habitualmente.
*   **Panel 2 (Continuous):** *He is chasing a suspect.* Lo que el personaje ESTÁ HACIENDO ahora mismo (en mitad de la acción).`

func presSimpleContQuestions() []model.Question {
	return []model.Question{
		{ID: "p1_1", Text: "Normally I ___ work at 5, but this week I ___ until 7.", Options: []string{"finish / am working", "am finishing / work", "finish / work", "am finishing / am working"}, CorrectAnswer: "finish / am working", Explanation: "Normally = Rutina (Simple). This week = Situación temporal (Continuous)."},
		{ID: "p1_2", Text: "She usually ___ coffee, but today she ___ tea.", Options: []string{"drinks / is drinking", "is drinking / drinks", "drinks / drinks", "is drinking / is drinking"}, CorrectAnswer: "drinks / is drinking", Explanation: "Usually = Rutina. Today = Excepción temporal."},
		{ID: "p1_3", Text: "We ___ English on Mondays, but this term we ___ extra classes.", Options: []string{"have / are having", "are having / have", "have / have", "are having / are having"}, CorrectAnswer: "have / are having", Explanation: "On Mondays = Horario habitual. This term = Periodo temporal actual."},
		{ID: "p1_4", Text: "My parents ___ in a small town, but at the moment they ___ in the city.", Options: []string{"live / are living", "are living / live", "live / live", "are living / are living"}, CorrectAnswer: "live / are living", Explanation: "Situación permanente vs Situación temporal (at the moment)."},
		{ID: "p1_5", Text: "I usually ___ up early, but today I ___ late.", Options: []string{"get / am getting", "am getting / get", "get / get", "am getting / am getting"}, CorrectAnswer: "get / am getting", Explanation: "Hábito vs Excepción de hoy."},
		{ID: "p1_6", Text: "He ___ football every Saturday.", Options: []string{"plays", "is playing", "play", "is play"}, CorrectAnswer: "plays", Explanation: "Every Saturday indica rutina."},
		{ID: "p1_7", Text: "Look! It ___.", Options: []string{"is raining", "rains", "rain", "is rain"}, CorrectAnswer: "is raining", Explanation: "Look! indica algo ocurriendo ahora mismo."},
		{ID: "p1_8", Text: "She ___ to school by bus this week.", Options: []string{"is going", "goes", "go", "is go"}, CorrectAnswer: "is going", Explanation: "This week indica una rutina temporal."},
		{ID: "p1_9", Text: "We never ___ TV during dinner.", Options: []string{"watch", "are watching", "watches", "watching"}, CorrectAnswer: "watch", Explanation: "Never se usa con Present Simple para frecuencia."},
		{ID: "p1_10", Text: "I can’t talk now. I ___ my homework.", Options: []string{"am doing", "do", "does", "am do"}, CorrectAnswer: "am doing", Explanation: "Acción en progreso que impide hablar ahora."},
		{ID: "p2_1", Text: "My brother usually ___ at home, but these days he ___ with a friend.", Options: []string{"stays / is staying", "is staying / stays", "stays / stays", "is staying / is staying"}, CorrectAnswer: "stays / is staying", Explanation: "Hábito vs 'These days' (temporal)."},
		{ID: "p2_2", Text: "The train ___ at 8:15 every morning.", Options: []string{"leaves", "is leaving", "leave", "is leave"}, CorrectAnswer: "leaves", Explanation: "Horarios de transporte (Timetables) = Present Simple."},
		{ID: "p2_3", Text: "I ___ maths this year because the syllabus is harder.", Options: []string{"am studying", "study", "studies", "am study"}, CorrectAnswer: "am studying", Explanation: "Acción en progreso durante un periodo largo (this year)."},
		{ID: "p2_4", Text: "She ___ a lot of time on social media these days.", Options: []string{"is spending", "spends", "spend", "is spend"}, CorrectAnswer: "is spending", Explanation: "Tendencia actual o hábito temporal."},
		{ID: "p2_5", Text: "Water ___ at 100ºC.", Options: []string{"boils", "is boiling", "boil", "is boil"}, CorrectAnswer: "boils", Explanation: "Verdad universal / Hecho científico."},
		{ID: "p2_6", Text: "Sorry, I can’t help you. I ___.", Options: []string{"am working", "work", "works", "am work"}, CorrectAnswer: "am working", Explanation: "Ocurriendo ahora mismo."},
		{ID: "p2_7", Text: "My school ___ an exchange programme every year.", Options: []string{"organises", "is organising", "organise", "is organise"}, CorrectAnswer: "organises", Explanation: "Evento recurrente anual."},
		{ID: "p2_8", Text: "This app ___ better with every update.", Options: []string{"is working", "works", "work", "is work"}, CorrectAnswer: "is working", Explanation: "Cambio progresivo o estado actual de funcionamiento."},
		{ID: "p2_9", Text: "We usually ___ lunch at 2, but today we ___ earlier.", Options: []string{"have / are having", "are having / have", "have / have", "are having / are having"}, CorrectAnswer: "have / are having", Explanation: "Costumbre vs Excepción."},
		{ID: "p2_10", Text: "I ___ what you mean, but I ___ with you.", Options: []string{"understand / don’t agree", "am understanding / am not agreeing", "understand / am not agreeing", "am understanding / don’t agree"}, CorrectAnswer: "understand / don’t agree", Explanation: "Understand y Agree son verbos de estado (Stative Verbs)."},
		{ID: "p3_1", Text: "He ___ always ___ my things without asking.", Options: []string{"is / taking", "does / take", "is / take", "does / taking"}, CorrectAnswer: "is / taking", Explanation: "Always + Continuous expresa molestia por un hábito repetitivo."},
		{ID: "p3_2", Text: "She ___ a new job next month.", Options: []string{"is starting", "starts", "start", "is start"}, CorrectAnswer: "is starting", Explanation: "Futuro planificado/confirmado (Arrangement)."},
		{ID: "p3_3", Text: "I ___ you, but I ___ this plan is a mistake.", Options: []string{"see / think", "am seeing / am thinking", "see / am thinking", "am seeing / think"}, CorrectAnswer: "see / think", Explanation: "See (entender) y Think (opinar) son estativos aquí."},
		{ID: "p3_4", Text: "My brother ___ (have) a shower right now.", Options: []string{"is having", "has", "having", "is have"}, CorrectAnswer: "is having", Explanation: "Acción en progreso. 'Have' aquí es acción (ducharse), no posesión."},
	}
}

const pastSimpleContTheory = `# Past Simple vs Past Continuous

## 1. La Regla de Oro: Interrupción ⚡
La estructura más común en exámenes es una acción larga (fondo) interrumpida por una acción corta (evento principal).

*   **Past Continuous (Acción Larga):** Estaba ocurriendo. *Background.*
*   **Past Simple (Acción Corta):** Ocurrió de repente. *Interruption.*

> "I **was sleeping** (larga) when the phone **rang** (corta)."

## 2. Pistas: When vs While 🕵️‍♀️

### When + Past Simple
Suele introducir la interrupción o el evento secuencial.
*   *I was cooking **when** he arrived.*

### While / As + Past Continuous
Suele introducir la acción en progreso.
*   ***While** I was cooking, he arrived.*

## 3. Usos Específicos

### Acciones Paralelas (Dos largas)
Si dos cosas ocurren a la vez y ninguna interrumpe a la otra, usamos **Past Continuous** en ambas.
*   *I **was studying** while my brother **was playing** video games.*

### Narración (Secuencia vs Contexto)
*   **Contexto (Atmósfera):** *The sun was shining, birds were singing...* (Continuous)
*   **Historia (Avance):** *He woke up, put on his coat, and left.* (Simple)

### ⚠️ Stative Verbs (Verbos de Estado)
Recuerda: Los verbos de "cabeza y corazón" (know, want, believe, like) **NO** suelen ir en continuo, incluso si era "en ese momento".
*   ❌ *I was knowing the answer.*
*   ✅ *I **knew** the answer.*

---

## 4. Spot the difference 🕵️‍♂️

Fíjate en la diferencia entre el **contexto** (lo que estaba pasando) y el **evento** (lo que ocurrió de repente).

<!-- COMIC_PLACEHOLDER -->

### The Contrast
*   **Panel 1 (Past Continuous):** *The detective was investigating.* La acción larga que establece la escena.
*   **Panel 2 (Past Simple):** *He found a clue.* La acción corta que interrumpe o hace avanzar la historia.`

func pastSimpleContQuestions() []model.Question {
	return []model.Question{
		{ID: "psp1_1", Text: "I ___ TV when my mother ___.", Options: []string{"watched / arrived", "was watching / arrived", "watched / was arriving", "was watching / was arriving"}, CorrectAnswer: "was watching / arrived", Explanation: "Acción en progreso (Continuous) interrumpida por acción corta (Simple)."},
		{ID: "psp1_2", Text: "They ___ football when it ___.", Options: []string{"played / rained", "were playing / rained", "played / was raining", "were playing / was raining"}, CorrectAnswer: "were playing / rained", Explanation: "Estaban jugando (fondo) cuando llovió (interrupción)."},
		{ID: "psp1_3", Text: "She ___ a shower when the phone ___.", Options: []string{"had / rang", "was having / rang", "had / was ringing", "was having / was ringing"}, CorrectAnswer: "was having / rang", Explanation: "Acción larga (ducharse) interrumpida por el teléfono."},
		{ID: "psp1_4", Text: "We ___ dinner when the lights ___.", Options: []string{"ate / went out", "were eating / went out", "ate / were going out", "were eating / were going out"}, CorrectAnswer: "were eating / went out", Explanation: "Cenábamos (Continuous) cuando se fueron las luces (Simple)."},
		{ID: "psp1_5", Text: "He ___ home when he ___ the accident.", Options: []string{"walked / saw", "was walking / saw", "walked / was seeing", "was walking / was seeing"}, CorrectAnswer: "was walking / saw", Explanation: "Caminaba (fondo) cuando vio (evento puntual)."},
		{ID: "psp1_6", Text: "I ___ asleep while I ___.", Options: []string{"fell / was reading", "was falling / read", "fell / read", "was falling / was reading"}, CorrectAnswer: "fell / was reading", Explanation: "Caer dormido (Simple, cambio de estado) mientras leía (Continuous)."},
		{ID: "psp1_7", Text: "The children ___ when the teacher ___.", Options: []string{"talked / entered", "were talking / entered", "talked / was entering", "were talking / was entering"}, CorrectAnswer: "were talking / entered", Explanation: "La clase hablaba (fondo) hasta que el profesor entró (Simple)."},
		{ID: "psp1_8", Text: "She ___ music when I ___.", Options: []string{"listened / arrived", "was listening / arrived", "listened / was arriving", "was listening / was arriving"}, CorrectAnswer: "was listening / arrived", Explanation: "Escuchaba música (fondo) cuando llegué."},
		{ID: "psp1_9", Text: "We ___ attention when the teacher ___.", Options: []string{"didn’t pay / explained", "weren’t paying / explained", "didn’t pay / was explaining", "weren’t paying / was explaining"}, CorrectAnswer: "weren’t paying / explained", Explanation: "Estado negativo continuo (no prestar atención) cuando ocurrió algo."},
		{ID: "psp1_10", Text: "He ___ his keys while he ___.", Options: []string{"lost / ran", "was losing / ran", "lost / was running", "was losing / was running"}, CorrectAnswer: "lost / was running", Explanation: "Perdió las llaves (punto concreto) mientras corría (acción larga)."},
		{ID: "psp2_1", Text: "While I ___ to school, I ___ an old friend.", Options: []string{"walked / met", "was walking / met", "walked / was meeting", "was walking / was meeting"}, CorrectAnswer: "was walking / met", Explanation: "While introduce la acción larga (Continuous)."},
		{ID: "psp2_2", Text: "They ___ quietly when suddenly someone ___.", Options: []string{"talked / shouted", "were talking / shouted", "talked / was shouting", "were talking / was shouting"}, CorrectAnswer: "were talking / shouted", Explanation: "Suddenly introduce el evento interruptor (Simple)."},
		{ID: "psp2_3", Text: "She ___ a book when she ___ a strange noise.", Options: []string{"read / heard", "was reading / heard", "read / was hearing", "was reading / was hearing"}, CorrectAnswer: "was reading / heard", Explanation: "Leer (largo) vs Oír (corto/sentido)."},
		{ID: "psp2_4", Text: "At 8 p.m. yesterday, we ___.", Options: []string{"watched a film", "were watching a film", "watch a film", "are watching a film"}, CorrectAnswer: "were watching a film", Explanation: "A una hora específica del pasado, la acción estaba 'en progreso'."},
		{ID: "psp2_5", Text: "He ___ attention because he ___.", Options: []string{"didn’t pay / was thinking", "wasn’t paying / thought", "didn’t pay / thought", "wasn’t paying / was thinking"}, CorrectAnswer: "wasn’t paying / was thinking", Explanation: "Descripción de una situación de fondo: No atendía porque estaba pensando."},
		{ID: "psp2_6", Text: "The students ___ notes while the teacher ___.", Options: []string{"took / spoke", "were taking / spoke", "took / was speaking", "were taking / was speaking"}, CorrectAnswer: "were taking / was speaking", Explanation: "Acciones paralelas: ambas ocurren a la vez sin interrumpirse (While)."},
		{ID: "psp2_7", Text: "I ___ my phone when it ___.", Options: []string{"checked / vibrated", "was checking / vibrated", "checked / was vibrating", "was checking / was vibrating"}, CorrectAnswer: "was checking / vibrated", Explanation: "Miraba el móvil (acción) cuando vibró (evento)."},
		{ID: "psp2_8", Text: "She ___ TV all afternoon.", Options: []string{"watched", "was watching", "watch", "was watched"}, CorrectAnswer: "was watching", Explanation: "'All afternoon' enfatiza la duración continua."},
		{ID: "psp2_9", Text: "We ___ about the exam when the teacher ___.", Options: []string{"talked / arrived", "were talking / arrived", "talked / was arriving", "were talking / was arriving"}, CorrectAnswer: "were talking / arrived", Explanation: "Hablábamos (fondo) cuando llegó."},
		{ID: "psp2_10", Text: "He ___ a jacket because it ___.", Options: []string{"wore / snowed", "was wearing / snowed", "wore / was snowing", "was wearing / was snowing"}, CorrectAnswer: "was wearing / was snowing", Explanation: "Descripción de escena: Llevaba chaqueta porque nevaba."},
		{ID: "psp3_1", Text: "I ___ my homework when you ___.", Options: []string{"did / called", "was doing / called", "did / were calling", "was doing / were calling"}, CorrectAnswer: "was doing / called", Explanation: "Hacía los deberes (largo) cuando llamaste."},
		{ID: "psp3_2", Text: "She ___ a lot of time online that evening.", Options: []string{"spent", "was spending", "spend", "was spent"}, CorrectAnswer: "was spending", Explanation: "Énfasis narrativo en el transcurso del tiempo esa tarde."},
		{ID: "psp3_3", Text: "While they ___, the alarm ___.", Options: []string{"slept / sounded", "were sleeping / sounded", "slept / was sounding", "were sleeping / was sounding"}, CorrectAnswer: "were sleeping / sounded", Explanation: "While + Continuous, Interrupción + Simple."},
		{ID: "psp3_4", Text: "He ___ attention, so he ___ the instructions.", Options: []string{"didn’t pay / missed", "wasn’t paying / missed", "didn’t pay / was missing", "wasn’t paying / was missing"}, CorrectAnswer: "wasn’t paying / missed", Explanation: "Causa (fondo): No prestaba atención. Resultado (hecho): Se perdió las instrucciones."},
		{ID: "psp3_5", Text: "At that moment, I ___ what to do.", Options: []string{"didn’t know", "wasn’t knowing", "didn’t knowing", "wasn’t knew"}, CorrectAnswer: "didn’t know", Explanation: "Know es un Stative Verb, no se usa en continuo."},
		{ID: "psp3_6", Text: "We ___ a great time at the party last night.", Options: []string{"were having", "had", "have", "were had"}, CorrectAnswer: "had", Explanation: "Resumen de la fiesta entera ('Last night' como evento completo)."},
		{ID: "psp3_7", Text: "The doorbell ___ while I ___.", Options: []string{"rang / slept", "was ringing / slept", "rang / was sleeping", "was ringing / was sleeping"}, CorrectAnswer: "rang / was sleeping", Explanation: "Evento puntual (Timbre) durante acción larga (Dormir)."},
		{ID: "psp3_8", Text: "She ___ when she ___ the bad news.", Options: []string{"cried / heard", "was crying / heard", "cried / was hearing", "was crying / was hearing"}, CorrectAnswer: "cried / heard", Explanation: "Reacción secuencial: Oyó la noticia y lloró (Simple)."},
		{ID: "psp3_9", Text: "They ___ dinner when the guests ___.", Options: []string{"prepared / arrived", "were preparing / arrived", "prepared / were arriving", "were preparing / were arriving"}, CorrectAnswer: "were preparing / arrived", Explanation: "Preparaban la cena (en proceso) cuando llegaron."},
		{ID: "psp3_10", Text: "I ___ attention because I ___.", Options: []string{"didn’t pay / was texting", "wasn’t paying / texted", "didn’t pay / texted", "wasn’t paying / was texting"}, CorrectAnswer: "wasn’t paying / was texting", Explanation: "Causa continua: No atendía porque estaba escribiendo."},
	}
}

const pastPerfectSimpleTheory = `# Tiempos Pasados: El Choque Final ⏳

Entender la línea temporal es la clave para dominar estos tres tiempos.

## 1. Past Simple (El punto final 🛑)
Acciones terminadas en un tiempo terminado. No hay conexión con el presente.
*   **Uso:** Narrar historias, hechos concretos en el pasado.
*   **Keywords:** Yesterday, last week, in 2010, ago, when I was young.
*   *Ejemplo:* I **went** to Paris in 2010. (Ya pasó, la fecha acabó).

## 2. Present Perfect (El puente 🌉)
Acciones pasadas que conectan con el presente (experiencias de vida, resultados recientes, tiempo no terminado).
*   **Uso:** Experiencias (sin fecha), cambios recientes, acciones en periodos no acabados (today, this week).
*   **Keywords:** Just, already, yet, ever, never, so far, since, for, lately.
*   *Ejemplo:* I **have been** to Paris twice. (En mi vida, hasta hoy).

## 3. Past Perfect (El pasado del pasado 🔙)
Acciones que ocurrieron **antes** de otra acción pasada. Es esencial para ordenar la historia.
*   **Estructura:** Had + Participio.
*   **Uso:** Dejar claro qué pasó primero.
*   **Keywords:** By the time, before, after, already, just (en contexto pasado).
*   *Ejemplo:* When I arrived at the station, the train **had left**.
    1.  El tren se fue (Past Perfect).
    2.  Yo llegué (Past Simple).

---

## 4. Spot the difference 🕵️‍♂️

Fíjate en la **secuencia temporal** de los eventos.

<!-- COMIC_PLACEHOLDER -->

### The Contrast
*   **Panel 1 (Past Perfect):** *The train had left.* Esto ocurrió **primero**. El tren ya se ha ido.
*   **Panel 2 (Past Simple):** *We arrived late.* Esto ocurrió **después**. Llegamos a una plataforma vacía.`

func pastPerfectSimpleQuestions() []model.Question {
	return []model.Question{
		{ID: "pp1_1", Text: "I ___ my homework already.", Options: []string{"did", "have done", "had done", "do"}, CorrectAnswer: "have done", Explanation: "'Already' suele ir con Present Perfect para indicar que algo ya está hecho."},
		{ID: "pp1_2", Text: "We ___ to Paris last year.", Options: []string{"have been", "were", "went", "had gone"}, CorrectAnswer: "went", Explanation: "'Last year' es un tiempo acabado -> Past Simple."},
		{ID: "pp1_3", Text: "She ___ never ___ sushi before.", Options: []string{"did / eat", "has / eaten", "had / eaten", "was / eating"}, CorrectAnswer: "has / eaten", Explanation: "Experiencia de vida hasta el presente (Present Perfect)."},
		{ID: "pp1_4", Text: "They ___ the film yesterday evening.", Options: []string{"have watched", "watched", "had watched", "watch"}, CorrectAnswer: "watched", Explanation: "Tiempo específico terminado en el pasado -> Past Simple."},
		{ID: "pp1_5", Text: "I ___ my keys. I can’t find them.", Options: []string{"lost", "have lost", "had lost", "lose"}, CorrectAnswer: "have lost", Explanation: "Consecuencia presente (no las encuentro ahora) -> Present Perfect."},
		{ID: "pp1_6", Text: "He ___ this book three times so far.", Options: []string{"read", "has read", "had read", "reads"}, CorrectAnswer: "has read", Explanation: "'So far' (hasta ahora) indica un periodo no terminado."},
		{ID: "pp1_7", Text: "We ___ our grandparents last weekend.", Options: []string{"have visited", "visited", "had visited", "visit"}, CorrectAnswer: "visited", Explanation: "'Last weekend' -> Past Simple."},
		{ID: "pp1_8", Text: "She ___ in this company since 2021.", Options: []string{"worked", "has worked", "had worked", "works"}, CorrectAnswer: "has worked", Explanation: "'Since' indica una acción que empezó en el pasado y continúa -> Present Perfect."},
		{ID: "pp1_9", Text: "I ___ never ___ such a difficult exam.", Options: []string{"did / have", "have / had", "had / had", "was / having"}, CorrectAnswer: "have / had", Explanation: "Experiencia hasta el momento."},
		{ID: "pp1_10", Text: "They ___ the match an hour ago.", Options: []string{"have finished", "finished", "had finished", "finish"}, CorrectAnswer: "finished", Explanation: "'Ago' siempre marca Past Simple."},
		{ID: "pp2_1", Text: "When we arrived, the film ___.", Options: []string{"started", "has started", "had started", "starts"}, CorrectAnswer: "had started", Explanation: "La película empezó antes de que llegáramos."},
		{ID: "pp2_2", Text: "She was nervous because she ___ a mistake.", Options: []string{"made", "has made", "had made", "makes"}, CorrectAnswer: "had made", Explanation: "El error ocurrió antes de sentirse nerviosa."},
		{ID: "pp2_3", Text: "They didn’t eat because they ___ already ___.", Options: []string{"ate", "have eaten", "had eaten", "were eating"}, CorrectAnswer: "had eaten", Explanation: "Habían comido antes de ese momento pasado."},
		{ID: "pp2_4", Text: "By the time I got home, my parents ___.", Options: []string{"slept", "have slept", "had gone to bed", "went to bed"}, CorrectAnswer: "had gone to bed", Explanation: "'By the time' + Past Simple suele requerir Past Perfect para la otra acción."},
		{ID: "pp2_5", Text: "He ___ the test before he realised one answer was wrong.", Options: []string{"finished", "has finished", "had finished", "finishes"}, CorrectAnswer: "had finished", Explanation: "Terminó antes de darse cuenta (secuencia)."},
		{ID: "pp2_6", Text: "We ___ never ___ that place before last summer.", Options: []string{"have / visited", "had / visited", "did / visit", "were / visiting"}, CorrectAnswer: "had / visited", Explanation: "Experiencia anterior a un momento pasado (last summer)."},
		{ID: "pp2_7", Text: "She was angry because he ___ her.", Options: []string{"forgot", "has forgotten", "had forgotten", "forgets"}, CorrectAnswer: "had forgotten", Explanation: "Causa anterior a la emoción pasada."},
		{ID: "pp2_8", Text: "After they ___ dinner, they went out.", Options: []string{"had had", "have had", "had", "were having"}, CorrectAnswer: "had had", Explanation: "'After' marca la primera acción de la secuencia (Past Perfect)."},
		{ID: "pp2_9", Text: "I recognised him immediately because I ___ him before.", Options: []string{"saw", "have seen", "had seen", "see"}, CorrectAnswer: "had seen", Explanation: "Lo había visto antes de reconocerlo."},
		{ID: "pp2_10", Text: "The train ___ when we got to the station.", Options: []string{"left", "has left", "had left", "leaves"}, CorrectAnswer: "had left", Explanation: "El tren ya se había ido (acción previa)."},
		{ID: "pp3_1", Text: "I ___ never ___ such a boring film before.", Options: []string{"did / see", "have / seen", "had / seen", "was / seeing"}, CorrectAnswer: "have / seen", Explanation: "Si la frase está en presente o aislada, es Present Perfect. Si dijera 'before that night', sería Past Perfect."},
		{ID: "pp3_2", Text: "She ___ her homework, so she could relax.", Options: []string{"finished", "has finished", "had finished", "finishes"}, CorrectAnswer: "had finished", Explanation: "Terminó (antes) para poder relajarse (pasado)."},
		{ID: "pp3_3", Text: "We ___ to that restaurant many times, so we knew the menu.", Options: []string{"went", "have been", "had been", "were going"}, CorrectAnswer: "had been", Explanation: "Experiencia acumulada antes de un momento pasado (we knew)."},
		{ID: "pp3_4", Text: "He ___ his wallet, but he found it later.", Options: []string{"lost", "has lost", "had lost", "loses"}, CorrectAnswer: "lost", Explanation: "Secuencia simple de hechos en Past Simple."},
		{ID: "pp3_5", Text: "By the time the teacher arrived, the students ___.", Options: []string{"started", "have started", "had started", "start"}, CorrectAnswer: "had started", Explanation: "Acción completada antes de la llegada del profesor."},
		{ID: "pp3_6", Text: "I ___ already ___ when you called me.", Options: []string{"slept", "have slept", "had slept", "was sleeping"}, CorrectAnswer: "was sleeping", Explanation: "¡Cuidado! Aquí 'already' con 'when you called' sugiere interrupción, pero gramaticalmente 'had slept' (ya había dormido) o 'was sleeping' (estaba durmiendo) son posibles. En contexto de interrupción: 'was sleeping'."},
		{ID: "pp3_7", Text: "She ___ abroad twice so far.", Options: []string{"lived", "has lived", "had lived", "lives"}, CorrectAnswer: "has lived", Explanation: "'So far' indica Present Perfect."},
		{ID: "pp3_8", Text: "They were tired because they ___ all day.", Options: []string{"worked", "have worked", "had worked", "work"}, CorrectAnswer: "had worked", Explanation: "Causa (trabajar) anterior al resultado pasado (estar cansado). Nota: 'had been working' también valdría, pero 'had worked' es la opción correcta aquí."},
		{ID: "pp3_9", Text: "We ___ the tickets before we realised the date was wrong.", Options: []string{"bought", "have bought", "had bought", "buy"}, CorrectAnswer: "had bought", Explanation: "Compramos antes de darnos cuenta."},
		{ID: "pp3_10", Text: "He ___ never ___ English before he moved to London.", Options: []string{"studied", "has studied", "had studied", "studies"}, CorrectAnswer: "had studied", Explanation: "Antes de una acción pasada (moved)."},
	}
}

const perfContinuousTheory = `# Perfect Continuous Tenses 🔄

La clave aquí no es solo "qué pasó", sino **cuánto tiempo** estuvo pasando y **cuándo** se notan los efectos.

## 1. Present Perfect Continuous (Efecto AHORA)
Acciones que empezaron en el pasado y:
1.  Continúan en el presente.
2.  Acaban de terminar, pero tienen un resultado visible *ahora*.

*   **Estructura:** Have/Has + BEEN + Verbo-ing.
*   **Keywords:** For, since, lately, recently, all day/morning.
*   *Ejemplo 1 (Continúa):* I **have been studying** English for 5 years. (Sigo estudiando).
*   *Ejemplo 2 (Resultado visible):* Look! It **has been raining**. (El suelo está mojado *ahora*).

## 2. Past Perfect Continuous (Efecto ANTES)
Es el "pasado del pasado" en versión extendida. Una acción que estaba ocurriendo antes de *otro* momento en el pasado.
*   **Estructura:** Had + BEEN + Verbo-ing.
*   **Uso:** Explicar la causa de un estado en el pasado.
*   *Ejemplo:* She **was** tired (pasado) because she **had been working** all day.

## 3. La Diferencia Clave: The Anchor ⚓

| Tiempo | Referencia (Ancla) | Ejemplo |
| :--- | :--- | :--- |
| **Pres. Perf. Cont.** | **NOW** (Ahora) | I am sweating because I **have been running**. |
| **Past Perf. Cont.** | **THEN** (Entonces) | I was sweating because I **had been running**. |

> **Truco:** Busca el verbo principal de la frase.
> Si dice "is/are/am" -> Probablemente **Present** Perfect.
> Si dice "was/were" -> Probablemente **Past** Perfect.

---

## 4. Spot the difference 🕵️‍♂️

La clave está en el **ancla temporal**: ¿Cuándo se nota el efecto?

<!-- COMIC_PLACEHOLDER -->

### The Contrast
*   **Panel 1 (Present Perf. Cont.):** *He is sweating.* (Ahora). Porque *he has been running.* El resultado conecta con el **presente**.
*   **Panel 2 (Past Perf. Cont.):** *He was sweating.* (Ayer). Porque *he had been running.* El resultado conectaba con un momento del **pasado**.`

func perfContinuousQuestions() []model.Question {
	return []model.Question{
		{ID: "ppc1_1", Text: "I ___ English for five years.", Options: []string{"study", "am studying", "have been studying", "had been studying"}, CorrectAnswer: "have been studying", Explanation: "Acción que empezó en el pasado y continúa ahora (for five years)."},
		{ID: "ppc1_2", Text: "She ___ all morning, so she’s tired.", Options: []string{"worked", "has worked", "has been working", "had been working"}, CorrectAnswer: "has been working", Explanation: "She IS tired (presente) -> Causa reciente en Present Perfect Continuous."},
		{ID: "ppc1_3", Text: "We ___ here since 2021.", Options: []string{"live", "are living", "have been living", "had been living"}, CorrectAnswer: "have been living", Explanation: "Since + Presente = Present Perfect Continuous."},
		{ID: "ppc1_4", Text: "He ___ a lot of stress lately.", Options: []string{"has", "is having", "has been having", "had been having"}, CorrectAnswer: "has been having", Explanation: "'Lately' es un marcador clave de Present Perfect Continuous."},
		{ID: "ppc1_5", Text: "They ___ for the exam all week.", Options: []string{"studied", "have studied", "have been studying", "had been studying"}, CorrectAnswer: "have been studying", Explanation: "Énfasis en la duración ('all week') con conexión presente."},
		{ID: "ppc1_6", Text: "I ___ for you for over an hour.", Options: []string{"wait", "am waiting", "have been waiting", "had been waiting"}, CorrectAnswer: "have been waiting", Explanation: "Acción incompleta o recién terminada con duración enfatizada."},
		{ID: "ppc1_7", Text: "She ___ better recently.", Options: []string{"feels", "has felt", "has been feeling", "had been feeling"}, CorrectAnswer: "has been feeling", Explanation: "Cambio progresivo reciente."},
		{ID: "ppc1_8", Text: "How long ___ you ___ here?", Options: []string{"do / work", "are / working", "have / worked", "have / been working"}, CorrectAnswer: "have / been working", Explanation: "Pregunta estándar por la duración de una acción actual."},
		{ID: "ppc1_9", Text: "My parents ___ about moving house.", Options: []string{"talk", "are talking", "have been talking", "had been talking"}, CorrectAnswer: "have been talking", Explanation: "Implica que han estado discutiéndolo últimamente."},
		{ID: "ppc1_10", Text: "It ___ all day.", Options: []string{"rains", "has rained", "has been raining", "had been raining"}, CorrectAnswer: "has been raining", Explanation: "Duración continua hasta el presente."},
		{ID: "ppc2_1", Text: "She was exhausted because she ___ all night.", Options: []string{"studied", "has studied", "had been studying", "was studying"}, CorrectAnswer: "had been studying", Explanation: "Was exhausted (Pasado) -> Causa anterior continua (Past Perf Cont)."},
		{ID: "ppc2_2", Text: "They were angry because we ___ too long.", Options: []string{"waited", "have waited", "had been waiting", "were waiting"}, CorrectAnswer: "had been waiting", Explanation: "Were angry (Pasado) -> La espera ocurrió antes."},
		{ID: "ppc2_3", Text: "His clothes were dirty because he ___.", Options: []string{"worked", "has worked", "had been working", "was working"}, CorrectAnswer: "had been working", Explanation: "Evidencia pasada de una acción previa."},
		{ID: "ppc2_4", Text: "We knew the answer because we ___ attention.", Options: []string{"paid", "have paid", "had been paying", "were paying"}, CorrectAnswer: "had been paying", Explanation: "Habíamos estado prestando atención antes de la pregunta."},
		{ID: "ppc2_5", Text: "She felt ill because she ___ enough.", Options: []string{"didn’t sleep", "hasn’t slept", "hadn’t been sleeping", "wasn’t sleeping"}, CorrectAnswer: "hadn’t been sleeping", Explanation: "Falta de sueño acumulada antes de sentirse mal."},
		{ID: "ppc2_6", Text: "They were tired because they ___ all day.", Options: []string{"walked", "have walked", "had been walking", "were walking"}, CorrectAnswer: "had been walking", Explanation: "Causa duradera anterior al cansancio pasado."},
		{ID: "ppc2_7", Text: "I understood the problem because I ___ about it.", Options: []string{"thought", "have thought", "had been thinking", "was thinking"}, CorrectAnswer: "had been thinking", Explanation: "Reflexión previa al momento de entender."},
		{ID: "ppc2_8", Text: "He failed the test because he ___.", Options: []string{"didn’t study", "hasn’t studied", "hadn’t been studying", "wasn’t studying"}, CorrectAnswer: "hadn’t been studying", Explanation: "La falta de estudio ocurrió antes del examen pasado."},
		{ID: "ppc2_9", Text: "The ground was wet because it ___.", Options: []string{"rained", "has rained", "had been raining", "was raining"}, CorrectAnswer: "had been raining", Explanation: "Llovió antes de que viéramos el suelo mojado."},
		{ID: "ppc2_10", Text: "She was nervous because she ___ too much.", Options: []string{"worried", "has worried", "had been worrying", "was worrying"}, CorrectAnswer: "had been worrying", Explanation: "Preocupación continua previa al estado de nervios."},
		{ID: "ppc3_1", Text: "I ___ all morning, so I need a break.", Options: []string{"studied", "have studied", "have been studying", "had been studying"}, CorrectAnswer: "have been studying", Explanation: "Need (Presente) -> Present Perfect Continuous."},
		{ID: "ppc3_2", Text: "He was late because he ___.", Options: []string{"drove", "has driven", "had been driving", "was driving"}, CorrectAnswer: "had been driving", Explanation: "Was late (Pasado) -> Acción previa duradera."},
		{ID: "ppc3_3", Text: "We ___ about that problem for weeks.", Options: []string{"talked", "have talked", "have been talking", "had been talking"}, CorrectAnswer: "have been talking", Explanation: "Sin contexto pasado explícito, asumimos conexión con el presente ('for weeks')."},
		{ID: "ppc3_4", Text: "She looked tired because she ___.", Options: []string{"worked", "has worked", "had been working", "was working"}, CorrectAnswer: "had been working", Explanation: "Looked (Pasado) -> Past Perfect Continuous."},
		{ID: "ppc3_5", Text: "How long ___ you ___ before you moved here?", Options: []string{"did / live", "were / living", "have / been living", "had / been living"}, CorrectAnswer: "had / been living", Explanation: "'Before you moved' establece un punto pasado -> Past Perfect Continuous."},
		{ID: "ppc3_6", Text: "They ___ too much noise, so the neighbours complained.", Options: []string{"made", "have made", "had been making", "were making"}, CorrectAnswer: "had been making", Explanation: "Complained (Pasado) -> La acción de hacer ruido fue anterior y continua."},
		{ID: "ppc3_7", Text: "I ___ this project since January.", Options: []string{"worked on", "am working on", "have been working on", "had been working on"}, CorrectAnswer: "have been working on", Explanation: "Since + Presente implícito = Present Perfect Cont."},
		{ID: "ppc3_8", Text: "She felt better because she ___.", Options: []string{"rested", "has rested", "had been resting", "was resting"}, CorrectAnswer: "had been resting", Explanation: "Felt (Pasado) -> Descanso previo."},
		{ID: "ppc3_9", Text: "We ___ about moving abroad recently.", Options: []string{"thought", "have thought", "have been thinking", "had been thinking"}, CorrectAnswer: "have been thinking", Explanation: "'Recently' conecta con el ahora."},
		{ID: "ppc3_10", Text: "He was stressed because he ___.", Options: []string{"studied", "has studied", "had been studying", "was studying"}, CorrectAnswer: "had been studying", Explanation: "Causa pasada de un estado pasado."},
	}
}
